package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
)

// ArtistRepo encapsulates database queries for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo { return &ArtistRepo{db: db} }

// Create inserts an artist and populates its generated ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO artists (name, description, image_url, genre) VALUES (?, ?, ?, ?)",
		a.Name, a.Description, a.ImageURL, a.Genre)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID returns ErrArtistNotFound when no row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, image_url, genre FROM artists WHERE id = ?", id).
		Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.Genre)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns artists matching the optional name search and genre
// filter, ordered by name.  These are the back-office list columns.
func (r *ArtistRepo) List(ctx context.Context, search, genre string) ([]*model.Artist, error) {
	q := "SELECT id, name, description, image_url, genre FROM artists"
	where, args := []string{}, []any{}
	if search != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+lower(search)+"%")
	}
	if genre != "" {
		where = append(where, "genre = ?")
		args = append(args, genre)
	}
	q += whereClause(where) + " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Artist
	for rows.Next() {
		a := new(model.Artist)
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.Genre); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update replaces all editable fields.  Returns ErrArtistNotFound when
// the artist does not exist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	if _, err := r.GetByID(ctx, a.ID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE artists SET name = ?, description = ?, image_url = ?, genre = ? WHERE id = ?",
		a.Name, a.Description, a.ImageURL, a.Genre, a.ID)
	return err
}

// Delete removes an artist; their concerts, tickets and orders cascade.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM artists WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrArtistNotFound
	}
	return nil
}
