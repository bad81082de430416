package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/queue"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

// PlaceOrderInput carries the validated purchase form.  Quantity is
// already known to be positive and TicketType a member of the enum by
// the time this reaches the service.
type PlaceOrderInput struct {
	TicketID     uint64
	Quantity     uint32
	CustomerName string
	Email        string
	Phone        string
	TicketType   string
}

// OrderService runs the purchase workflow.  Every placement executes
// inside a single transaction: resolve the concert, resolve the ticket
// by the (id, concert) pair, decrement the remaining quantity with a
// conditional update, insert the order.  A failed step rolls the whole
// transaction back, so no partial order or partial decrement can
// survive, and the conditional decrement means two concurrent
// purchases can never oversell the same ticket.
type OrderService struct {
	db       *sql.DB
	concerts *repository.ConcertRepo
	tickets  *repository.TicketRepo
	orders   *repository.OrderRepo
	events   EventPublisher
	log      *logrus.Logger
}

// NewOrderService wires the order workflow.  events may be nil when no
// broker is configured.
func NewOrderService(db *sql.DB, concerts *repository.ConcertRepo, tickets *repository.TicketRepo,
	orders *repository.OrderRepo, events EventPublisher, log *logrus.Logger) *OrderService {
	if db == nil || concerts == nil || tickets == nil || orders == nil {
		panic("nil dependency passed to NewOrderService")
	}
	return &OrderService{db: db, concerts: concerts, tickets: tickets, orders: orders, events: events, log: log}
}

// PlaceOrder executes the purchase workflow and returns the created
// order.  Error mapping: repository.ErrConcertNotFound and
// repository.ErrTicketNotFound for lookup misses,
// repository.ErrInsufficientStock when the requested quantity exceeds
// the remaining stock.
func (s *OrderService) PlaceOrder(ctx context.Context, concertID uint64, in PlaceOrderInput) (*model.TicketOrder, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	concert, err := s.concerts.GetByIDTx(ctx, tx, concertID)
	if err != nil {
		return nil, err
	}
	// Pair lookup: the ticket must belong to this concert.
	ticket, err := s.tickets.GetByIDAndConcertTx(ctx, tx, in.TicketID, concert.ID)
	if err != nil {
		return nil, err
	}

	// Availability check and decrement in one statement.
	if err := s.tickets.DecrementStockTx(ctx, tx, ticket.ID, in.Quantity); err != nil {
		return nil, err
	}

	order := &model.TicketOrder{
		ConcertID:       concert.ID,
		TicketID:        ticket.ID,
		CustomerName:    in.CustomerName,
		Email:           in.Email,
		Phone:           in.Phone,
		TicketType:      in.TicketType,
		Quantity:        in.Quantity,
		TotalPriceCents: ticket.PriceCents * int64(in.Quantity),
	}
	if err := s.orders.CreateTx(ctx, tx, order); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	s.log.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"concert_id":   order.ConcertID,
		"quantity":     order.Quantity,
		"total":        order.TotalPrice(),
	}).Info("order placed")

	s.publishPlaced(ctx, order)
	return order, nil
}

// GetOrder returns an order for the confirmation page.
func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*model.TicketOrder, error) {
	return s.orders.GetByID(ctx, id)
}

// publishPlaced enriches the committed order with artist/venue names
// and hands it to the broker.  Failures are logged, never surfaced: the
// purchase has already succeeded.
func (s *OrderService) publishPlaced(ctx context.Context, o *model.TicketOrder) {
	if s.events == nil {
		return
	}
	ev := queue.OrderPlacedEvent{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		ConcertID:   o.ConcertID,
		TicketID:    o.TicketID,
		TicketType:  o.TicketType,
		Quantity:    o.Quantity,
		TotalPrice:  o.TotalPrice(),
		Customer:    o.CustomerName,
		PlacedAt:    o.OrderDate.UTC().Format(time.RFC3339),
	}
	if detail, err := s.concerts.GetDetail(ctx, o.ConcertID); err == nil {
		ev.ArtistName = detail.Artist.Name
		ev.VenueName = detail.Venue.Name
		ev.VenueCity = detail.Venue.City
	}
	if err := s.events.PublishOrderPlaced(ctx, ev); err != nil {
		s.log.WithError(err).WithField("order_id", o.ID).Warn("order event publish failed")
	}
}
