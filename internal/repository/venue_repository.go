package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
)

// VenueRepo encapsulates database queries for venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

// whereClause joins filter fragments into a WHERE clause, or returns an
// empty string when there are none.
func whereClause(where []string) string {
	if len(where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(where, " AND ")
}

// Create inserts a venue and populates its generated ID.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO venues (name, city, address, capacity) VALUES (?, ?, ?, ?)",
		v.Name, v.City, v.Address, v.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID returns ErrVenueNotFound when no row matches.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, city, address, capacity FROM venues WHERE id = ?", id).
		Scan(&v.ID, &v.Name, &v.City, &v.Address, &v.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns venues matching the optional name/city search and exact
// city filter, ordered by name.
func (r *VenueRepo) List(ctx context.Context, search, city string) ([]*model.Venue, error) {
	q := "SELECT id, name, city, address, capacity FROM venues"
	where, args := []string{}, []any{}
	if search != "" {
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(city) LIKE ?)")
		pat := "%" + lower(search) + "%"
		args = append(args, pat, pat)
	}
	if city != "" {
		where = append(where, "city = ?")
		args = append(args, city)
	}
	q += whereClause(where) + " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Venue
	for rows.Next() {
		v := new(model.Venue)
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Address, &v.Capacity); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update replaces all editable fields.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	if _, err := r.GetByID(ctx, v.ID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE venues SET name = ?, city = ?, address = ?, capacity = ? WHERE id = ?",
		v.Name, v.City, v.Address, v.Capacity, v.ID)
	return err
}

// Delete removes a venue; concerts held there cascade away with their
// tickets and orders.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM venues WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVenueNotFound
	}
	return nil
}
