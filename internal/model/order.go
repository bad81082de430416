package model

import "time"

// Ticket types recorded on an order.  This is the sales-floor
// classification chosen by the customer, independent of the ticket's
// pricing category.
const (
	TicketTypeDancefloor = "dancefloor"
	TicketTypeFanZone    = "fan-zone"
	TicketTypeVIP        = "vip"
)

// ValidTicketType reports whether s is one of the accepted ticket types.
func ValidTicketType(s string) bool {
	switch s {
	case TicketTypeDancefloor, TicketTypeFanZone, TicketTypeVIP:
		return true
	}
	return false
}

// TicketOrder is a customer's purchase record against a specific ticket
// category of a concert.  Orders are created exactly once by the public
// purchase flow and are never updated or deleted through it; OrderNumber
// and OrderDate are immutable after creation.
//
// Fields:
//  ID              – primary key identifier.
//  ConcertID       – concert the purchase is for.
//  TicketID        – ticket category purchased.
//  CustomerName    – buyer's name.
//  Email           – buyer's email address.
//  Phone           – buyer's phone number.
//  TicketType      – dancefloor, fan-zone or vip.
//  Quantity        – number of units purchased, always positive.
//  TotalPriceCents – ticket price × quantity, computed at creation.
//  OrderDate       – when the order was placed.
//  OrderNumber     – unique human-readable code "T" + six digits.
type TicketOrder struct {
	ID              uint64    `json:"id"`                // ticket_orders.id
	ConcertID       uint64    `json:"concert_id"`        // ticket_orders.concert_id
	TicketID        uint64    `json:"ticket_id"`         // ticket_orders.ticket_id
	CustomerName    string    `json:"customer_name"`     // ticket_orders.customer_name
	Email           string    `json:"email"`             // ticket_orders.email
	Phone           string    `json:"phone"`             // ticket_orders.phone
	TicketType      string    `json:"ticket_type"`       // ticket_orders.ticket_type
	Quantity        uint32    `json:"quantity"`          // ticket_orders.quantity
	TotalPriceCents int64     `json:"total_price_cents"` // ticket_orders.total_price_cents
	OrderDate       time.Time `json:"order_date"`        // ticket_orders.order_date
	OrderNumber     string    `json:"order_number"`      // ticket_orders.order_number
}

// TotalPrice renders the order total as an exact decimal string.
func (o TicketOrder) TotalPrice() string { return FormatAmountCents(o.TotalPriceCents) }
