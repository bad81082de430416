package model

import "time"

// Ticket is a priced category of admission for a concert with a
// remaining-inventory counter.  It is not an individual seat: Quantity
// counts the units still available for sale and is decremented as part
// of a successful purchase, never below zero.
//
// Fields:
//  ID         – primary key identifier.
//  ConcertID  – concert this ticket admits to.
//  CategoryID – pricing category.
//  PriceCents – unit price in cents, never negative.
//  SaleDate   – when the ticket went on sale (set at creation).
//  Quantity   – remaining units available for purchase.
type Ticket struct {
	ID         uint64    `json:"id"`          // tickets.id
	ConcertID  uint64    `json:"concert_id"`  // tickets.concert_id
	CategoryID uint64    `json:"category_id"` // tickets.category_id
	PriceCents int64     `json:"price_cents"` // tickets.price_cents
	SaleDate   time.Time `json:"sale_date"`   // tickets.sale_date
	Quantity   uint32    `json:"quantity"`    // tickets.quantity
}

// Price renders the unit price as an exact decimal string.
func (t Ticket) Price() string { return FormatAmountCents(t.PriceCents) }
