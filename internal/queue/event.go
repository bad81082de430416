// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// OrderPlacedEvent is published after a purchase transaction commits.
// It carries enough information for downstream consumers to log, notify
// or feed analytics without querying the primary database.
type OrderPlacedEvent struct {
	OrderID     uint64 `json:"order_id"`
	OrderNumber string `json:"order_number"`
	ConcertID   uint64 `json:"concert_id"`
	ArtistName  string `json:"artist_name"`
	VenueName   string `json:"venue_name"`
	VenueCity   string `json:"venue_city"`
	TicketID    uint64 `json:"ticket_id"`
	TicketType  string `json:"ticket_type"`
	Quantity    uint32 `json:"quantity"`
	TotalPrice  string `json:"total_price"`
	Customer    string `json:"customer"`
	PlacedAt    string `json:"placed_at"`
}
