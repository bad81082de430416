package model

import "time"

// Concert is a scheduled event pairing one artist and one venue with a
// start and end time.  Concerts own tickets and ticket orders; deleting
// a concert removes both through the schema's cascade rules.
//
// Fields:
//  ID          – primary key identifier.
//  ArtistID    – performing artist.
//  VenueID     – hosting venue.
//  StartTime   – when the concert begins.
//  EndTime     – when the concert ends (must be after StartTime).
//  Description – free-form event description.
type Concert struct {
	ID          uint64    `json:"id"`          // concerts.id
	ArtistID    uint64    `json:"artist_id"`   // concerts.artist_id
	VenueID     uint64    `json:"venue_id"`    // concerts.venue_id
	StartTime   time.Time `json:"start_time"`  // concerts.start_time
	EndTime     time.Time `json:"end_time"`    // concerts.end_time
	Description string    `json:"description"` // concerts.description
}
