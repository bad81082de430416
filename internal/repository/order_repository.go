package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
)

// OrderRepo encapsulates database queries for ticket orders.  Orders
// are only ever created through CreateTx as part of the purchase
// transaction; the public surface never updates or deletes them.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo constructs an OrderRepo with the provided DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// FormatOrderNumber renders a row id as the human-readable order code:
// "T" followed by the id zero-padded to six digits.  Because the id
// comes from the table's auto-increment, codes are unique and strictly
// increasing even under concurrent purchases.
func FormatOrderNumber(id uint64) string {
	return fmt.Sprintf("T%06d", id)
}

// CreateTx inserts an order within the purchase transaction and assigns
// its order number from the generated id in the same transaction.  The
// record's ID, OrderNumber and OrderDate are populated on return.
// order_number starts as NULL, not a placeholder string: the column is
// unique and concurrent transactions must not contend on a shared
// sentinel value.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *model.TicketOrder) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO ticket_orders
		 (concert_id, ticket_id, customer_name, email, phone, ticket_type, quantity, total_price_cents, order_number)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		o.ConcertID, o.TicketID, o.CustomerName, o.Email, o.Phone,
		o.TicketType, o.Quantity, o.TotalPriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	o.OrderNumber = FormatOrderNumber(o.ID)
	if _, err := tx.ExecContext(ctx,
		"UPDATE ticket_orders SET order_number = ? WHERE id = ?", o.OrderNumber, o.ID); err != nil {
		return err
	}
	return tx.QueryRowContext(ctx,
		"SELECT order_date FROM ticket_orders WHERE id = ?", o.ID).Scan(&o.OrderDate)
}

const orderColumns = `id, concert_id, ticket_id, customer_name, email, phone,
       ticket_type, quantity, total_price_cents, order_date, order_number`

func scanOrder(scan func(...any) error) (*model.TicketOrder, error) {
	var o model.TicketOrder
	if err := scan(&o.ID, &o.ConcertID, &o.TicketID, &o.CustomerName, &o.Email, &o.Phone,
		&o.TicketType, &o.Quantity, &o.TotalPriceCents, &o.OrderDate, &o.OrderNumber); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByID returns ErrOrderNotFound when no row matches.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (*model.TicketOrder, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM ticket_orders WHERE id = ?", id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// OrderSearchQuery defines the back-office filters for orders:
// free-text search over customer name and order number, an exact
// ticket-type filter and an order-date day filter.
type OrderSearchQuery struct {
	Search     string
	TicketType string
	Date       *time.Time
}

// Search returns orders matching the back-office filters, newest first.
func (r *OrderRepo) Search(ctx context.Context, q OrderSearchQuery) ([]*model.TicketOrder, error) {
	where, args := []string{}, []any{}
	if q.Search != "" {
		where = append(where, "(LOWER(customer_name) LIKE ? OR LOWER(order_number) LIKE ?)")
		pat := "%" + lower(q.Search) + "%"
		args = append(args, pat, pat)
	}
	if q.TicketType != "" {
		where = append(where, "ticket_type = ?")
		args = append(args, q.TicketType)
	}
	if q.Date != nil {
		where = append(where, "DATE(order_date) = ?")
		args = append(args, q.Date.Format("2006-01-02"))
	}

	sqlQ := "SELECT " + orderColumns + " FROM ticket_orders" +
		whereClause(where) + " ORDER BY order_date DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, sqlQ, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.TicketOrder, 0)
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateContact lets back-office staff correct a buyer's contact
// details.  Order number, date, quantity and totals are immutable once
// created.
func (r *OrderRepo) UpdateContact(ctx context.Context, id uint64, name, email, phone string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE ticket_orders SET customer_name = ?, email = ?, phone = ? WHERE id = ?",
		name, email, phone, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an order (back-office only; the public surface never
// deletes orders).
func (r *OrderRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM ticket_orders WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
