package model

// Artist is a performer that concerts are scheduled for.  An artist
// may have any number of concerts.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – artist or band name.
//  Description – free-form biography text.
//  ImageURL    – promotional image location.
//  Genre       – musical genre used for back-office filtering.
type Artist struct {
	ID          uint64 `json:"id"`          // artists.id
	Name        string `json:"name"`        // artists.name
	Description string `json:"description"` // artists.description
	ImageURL    string `json:"image_url"`   // artists.image_url
	Genre       string `json:"genre"`       // artists.genre
}
