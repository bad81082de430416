package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
)

// TicketRepo encapsulates database queries for tickets.  A ticket is a
// priced admission category with a remaining-quantity counter; the
// counter is only ever decremented through DecrementStockTx inside the
// purchase transaction.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the provided DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// Create inserts a ticket.  SaleDate defaults in the database to the
// creation date; the row is read back so callers see it populated.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tickets (concert_id, category_id, price_cents, quantity) VALUES (?, ?, ?, ?)",
		t.ConcertID, t.CategoryID, t.PriceCents, t.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT sale_date FROM tickets WHERE id = ?", t.ID).Scan(&t.SaleDate)
}

// GetByID returns ErrTicketNotFound when no row matches.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (*model.Ticket, error) {
	var t model.Ticket
	err := r.db.QueryRowContext(ctx,
		"SELECT id, concert_id, category_id, price_cents, sale_date, quantity FROM tickets WHERE id = ?", id).
		Scan(&t.ID, &t.ConcertID, &t.CategoryID, &t.PriceCents, &t.SaleDate, &t.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByIDAndConcertTx resolves a ticket by the (id, concert) pair inside
// an existing transaction.  The pair lookup matters: a ticket id that
// exists but belongs to a different concert is still a miss.
func (r *TicketRepo) GetByIDAndConcertTx(ctx context.Context, tx *sql.Tx, id, concertID uint64) (*model.Ticket, error) {
	var t model.Ticket
	err := tx.QueryRowContext(ctx,
		"SELECT id, concert_id, category_id, price_cents, sale_date, quantity FROM tickets WHERE id = ? AND concert_id = ?",
		id, concertID).
		Scan(&t.ID, &t.ConcertID, &t.CategoryID, &t.PriceCents, &t.SaleDate, &t.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// DecrementStockTx atomically decrements a ticket's remaining quantity
// within the purchase transaction.  The availability check and the
// write are a single conditional UPDATE, so two concurrent purchases
// can never both succeed past the remaining stock: the second sees zero
// rows affected and gets ErrInsufficientStock.
func (r *TicketRepo) DecrementStockTx(ctx context.Context, tx *sql.Tx, id uint64, qty uint32) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE tickets SET quantity = quantity - ? WHERE id = ? AND quantity >= ?",
		qty, id, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// AdminTicketRow is a row of the back-office ticket list: the ticket
// joined with its concert's artist and its category.
type AdminTicketRow struct {
	ID           uint64    `json:"id"`
	ConcertID    uint64    `json:"concert_id"`
	ArtistName   string    `json:"artist_name"`
	CategoryID   uint64    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Price        string    `json:"price"`
	Quantity     uint32    `json:"quantity"`
	SaleDate     time.Time `json:"sale_date"`
}

// TicketSearchQuery defines the back-office filters for tickets:
// free-text search over the concert's artist name, an exact category
// filter and an exact sale-date filter.
type TicketSearchQuery struct {
	Search     string
	CategoryID uint64
	SaleDate   *time.Time
}

// Search returns tickets matching the back-office filters, ordered by
// price ascending.
func (r *TicketRepo) Search(ctx context.Context, q TicketSearchQuery) ([]AdminTicketRow, error) {
	where, args := []string{}, []any{}
	if q.Search != "" {
		where = append(where, "LOWER(a.name) LIKE ?")
		args = append(args, "%"+lower(q.Search)+"%")
	}
	if q.CategoryID != 0 {
		where = append(where, "t.category_id = ?")
		args = append(args, q.CategoryID)
	}
	if q.SaleDate != nil {
		where = append(where, "t.sale_date = ?")
		args = append(args, q.SaleDate.Format("2006-01-02"))
	}

	sqlQ := `SELECT t.id, t.concert_id, a.name, t.category_id, cat.name, t.price_cents, t.quantity, t.sale_date
	         FROM tickets t
	         JOIN concerts c   ON c.id = t.concert_id
	         JOIN artists a    ON a.id = c.artist_id
	         JOIN categories cat ON cat.id = t.category_id` +
		whereClause(where) + ` ORDER BY t.price_cents ASC`

	rows, err := r.db.QueryContext(ctx, sqlQ, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AdminTicketRow, 0)
	for rows.Next() {
		var row AdminTicketRow
		var priceCents int64
		if err := rows.Scan(&row.ID, &row.ConcertID, &row.ArtistName, &row.CategoryID,
			&row.CategoryName, &priceCents, &row.Quantity, &row.SaleDate); err != nil {
			return nil, err
		}
		row.Price = model.FormatAmountCents(priceCents)
		out = append(out, row)
	}
	return out, rows.Err()
}

// Update replaces price, category and quantity.  SaleDate is immutable.
func (r *TicketRepo) Update(ctx context.Context, t *model.Ticket) error {
	if _, err := r.GetByID(ctx, t.ID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE tickets SET category_id = ?, price_cents = ?, quantity = ? WHERE id = ?",
		t.CategoryID, t.PriceCents, t.Quantity, t.ID)
	return err
}

// Delete removes a ticket; orders against it cascade away.
func (r *TicketRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tickets WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTicketNotFound
	}
	return nil
}
