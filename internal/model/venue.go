package model

// Venue is a location where concerts take place.
//
// Fields:
//  ID       – primary key identifier.
//  Name     – venue name.
//  City     – city used for back-office filtering.
//  Address  – street address.
//  Capacity – maximum audience size, never negative.
type Venue struct {
	ID       uint64 `json:"id"`       // venues.id
	Name     string `json:"name"`     // venues.name
	City     string `json:"city"`     // venues.city
	Address  string `json:"address"`  // venues.address
	Capacity uint32 `json:"capacity"` // venues.capacity
}
