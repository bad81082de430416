package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
)

// ConcertRepo encapsulates database queries for concerts, including the
// joined views the storefront renders.
type ConcertRepo struct {
	db *sql.DB
}

// NewConcertRepo constructs a ConcertRepo with the provided DB handle.
func NewConcertRepo(db *sql.DB) *ConcertRepo { return &ConcertRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions
// spanning multiple repositories.
func (r *ConcertRepo) DB() *sql.DB { return r.db }

// TicketWithCategory is a ticket joined with its pricing category name,
// as shown on the concert detail page.
type TicketWithCategory struct {
	model.Ticket
	CategoryName string `json:"category_name"`
	Price        string `json:"price"`
}

// ConcertSummary is a concert joined with its artist and venue plus the
// concert's ticket set.  The storefront listing returns a slice of
// these ordered by start time.
type ConcertSummary struct {
	ID          uint64               `json:"id"`
	StartTime   time.Time            `json:"start_time"`
	EndTime     time.Time            `json:"end_time"`
	Description string               `json:"description"`
	Artist      model.Artist         `json:"artist"`
	Venue       model.Venue          `json:"venue"`
	Tickets     []TicketWithCategory `json:"tickets"`
}

const concertJoinColumns = `c.id, c.start_time, c.end_time, c.description,
       a.id, a.name, a.description, a.image_url, a.genre,
       v.id, v.name, v.city, v.address, v.capacity`

func scanConcertSummary(scan func(...any) error) (*ConcertSummary, error) {
	var s ConcertSummary
	if err := scan(
		&s.ID, &s.StartTime, &s.EndTime, &s.Description,
		&s.Artist.ID, &s.Artist.Name, &s.Artist.Description, &s.Artist.ImageURL, &s.Artist.Genre,
		&s.Venue.ID, &s.Venue.Name, &s.Venue.City, &s.Venue.Address, &s.Venue.Capacity,
	); err != nil {
		return nil, err
	}
	s.Tickets = []TicketWithCategory{}
	return &s, nil
}

// ListWithDetails returns all concerts with artist and venue joined and
// their ticket sets preloaded, ordered by start time ascending.  Tickets
// for all concerts are fetched in a single follow-up query and folded
// into their rows.
func (r *ConcertRepo) ListWithDetails(ctx context.Context) ([]*ConcertSummary, error) {
	const q = `SELECT ` + concertJoinColumns + `
	           FROM concerts c
	           JOIN artists a ON a.id = c.artist_id
	           JOIN venues  v ON v.id = c.venue_id
	           ORDER BY c.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*ConcertSummary, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		s, err := scanConcertSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// Preload tickets for every listed concert in one query.
	ids := make([]any, 0, len(out))
	placeholders := make([]string, 0, len(out))
	for _, s := range out {
		ids = append(ids, s.ID)
		placeholders = append(placeholders, "?")
	}
	tq := `SELECT t.id, t.concert_id, t.category_id, t.price_cents, t.sale_date, t.quantity, cat.name
	       FROM tickets t
	       JOIN categories cat ON cat.id = t.category_id
	       WHERE t.concert_id IN (` + strings.Join(placeholders, ",") + `)
	       ORDER BY t.concert_id, t.price_cents ASC`
	trows, err := r.db.QueryContext(ctx, tq, ids...)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	for trows.Next() {
		var tc TicketWithCategory
		if err := trows.Scan(&tc.ID, &tc.ConcertID, &tc.CategoryID, &tc.PriceCents,
			&tc.SaleDate, &tc.Quantity, &tc.CategoryName); err != nil {
			return nil, err
		}
		tc.Price = tc.Ticket.Price()
		if i, ok := index[tc.ConcertID]; ok {
			out[i].Tickets = append(out[i].Tickets, tc)
		}
	}
	return out, trows.Err()
}

// GetDetail returns one concert with artist, venue and its tickets
// joined with category, tickets ordered by price ascending.  Returns
// ErrConcertNotFound when the id does not match any concert.
func (r *ConcertRepo) GetDetail(ctx context.Context, id uint64) (*ConcertSummary, error) {
	const q = `SELECT ` + concertJoinColumns + `
	           FROM concerts c
	           JOIN artists a ON a.id = c.artist_id
	           JOIN venues  v ON v.id = c.venue_id
	           WHERE c.id = ?`
	s, err := scanConcertSummary(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConcertNotFound
		}
		return nil, err
	}

	const tq = `SELECT t.id, t.concert_id, t.category_id, t.price_cents, t.sale_date, t.quantity, cat.name
	            FROM tickets t
	            JOIN categories cat ON cat.id = t.category_id
	            WHERE t.concert_id = ?
	            ORDER BY t.price_cents ASC`
	rows, err := r.db.QueryContext(ctx, tq, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var tc TicketWithCategory
		if err := rows.Scan(&tc.ID, &tc.ConcertID, &tc.CategoryID, &tc.PriceCents,
			&tc.SaleDate, &tc.Quantity, &tc.CategoryName); err != nil {
			return nil, err
		}
		tc.Price = tc.Ticket.Price()
		s.Tickets = append(s.Tickets, tc)
	}
	return s, rows.Err()
}

// Create inserts a concert and populates its generated ID.
func (r *ConcertRepo) Create(ctx context.Context, c *model.Concert) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO concerts (artist_id, venue_id, start_time, end_time, description) VALUES (?, ?, ?, ?, ?)",
		c.ArtistID, c.VenueID, c.StartTime, c.EndTime, c.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID returns the bare concert row, ErrConcertNotFound on a miss.
func (r *ConcertRepo) GetByID(ctx context.Context, id uint64) (*model.Concert, error) {
	var c model.Concert
	err := r.db.QueryRowContext(ctx,
		"SELECT id, artist_id, venue_id, start_time, end_time, description FROM concerts WHERE id = ?", id).
		Scan(&c.ID, &c.ArtistID, &c.VenueID, &c.StartTime, &c.EndTime, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConcertNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByIDTx is GetByID inside an existing transaction, used by the
// purchase workflow so the concert lookup shares the purchase's
// isolation.
func (r *ConcertRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Concert, error) {
	var c model.Concert
	err := tx.QueryRowContext(ctx,
		"SELECT id, artist_id, venue_id, start_time, end_time, description FROM concerts WHERE id = ?", id).
		Scan(&c.ID, &c.ArtistID, &c.VenueID, &c.StartTime, &c.EndTime, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConcertNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update replaces all editable fields.
func (r *ConcertRepo) Update(ctx context.Context, c *model.Concert) error {
	if _, err := r.GetByID(ctx, c.ID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE concerts SET artist_id = ?, venue_id = ?, start_time = ?, end_time = ?, description = ? WHERE id = ?",
		c.ArtistID, c.VenueID, c.StartTime, c.EndTime, c.Description, c.ID)
	return err
}

// Delete removes a concert; its tickets, orders and shifts cascade.
func (r *ConcertRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM concerts WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConcertNotFound
	}
	return nil
}

// ConcertSearchQuery defines the back-office filters for concerts:
// free-text search over artist name and venue city, an exact city
// filter, and a start-time range for the date drill-down.
type ConcertSearchQuery struct {
	Search string
	City   string
	From   *time.Time
	To     *time.Time
}

// AdminConcertRow is a row of the back-office concert list.
type AdminConcertRow struct {
	ID         uint64    `json:"id"`
	ArtistName string    `json:"artist_name"`
	VenueName  string    `json:"venue_name"`
	VenueCity  string    `json:"venue_city"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// Search returns concerts matching the back-office filters, ordered by
// start time ascending.
func (r *ConcertRepo) Search(ctx context.Context, q ConcertSearchQuery) ([]AdminConcertRow, error) {
	where, args := []string{}, []any{}
	if q.Search != "" {
		where = append(where, "(LOWER(a.name) LIKE ? OR LOWER(v.city) LIKE ?)")
		pat := "%" + lower(q.Search) + "%"
		args = append(args, pat, pat)
	}
	if q.City != "" {
		where = append(where, "v.city = ?")
		args = append(args, q.City)
	}
	if q.From != nil {
		where = append(where, "c.start_time >= ?")
		args = append(args, *q.From)
	}
	if q.To != nil {
		where = append(where, "c.start_time < ?")
		args = append(args, *q.To)
	}

	sqlQ := `SELECT c.id, a.name, v.name, v.city, c.start_time, c.end_time
	         FROM concerts c
	         JOIN artists a ON a.id = c.artist_id
	         JOIN venues  v ON v.id = c.venue_id` +
		whereClause(where) + ` ORDER BY c.start_time ASC`

	rows, err := r.db.QueryContext(ctx, sqlQ, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AdminConcertRow, 0)
	for rows.Next() {
		var row AdminConcertRow
		if err := rows.Scan(&row.ID, &row.ArtistName, &row.VenueName, &row.VenueCity,
			&row.StartTime, &row.EndTime); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
