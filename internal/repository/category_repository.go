package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
)

// CategoryRepo encapsulates database queries for ticket pricing
// categories.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the provided DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// Create inserts a category and populates its generated ID.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	res, err := r.db.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?)", c.Name)
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

// GetByID returns ErrCategoryNotFound when no row matches.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (*model.Category, error) {
	var c model.Category
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE id = ?", id).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all categories, optionally narrowed by a case-insensitive
// name search.
func (r *CategoryRepo) List(ctx context.Context, search string) ([]*model.Category, error) {
	q := "SELECT id, name FROM categories"
	args := []any{}
	if search != "" {
		q += " WHERE LOWER(name) LIKE ?"
		args = append(args, "%"+lower(search)+"%")
	}
	q += " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Category
	for rows.Next() {
		c := new(model.Category)
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateName renames a category.  Returns ErrCategoryNotFound when no
// row is affected.
func (r *CategoryRepo) UpdateName(ctx context.Context, id uint64, name string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE categories SET name = ? WHERE id = ?", name, id)
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

// Delete removes a category.  Tickets referencing it are removed by the
// cascade, and their orders with them.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
