package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
)

// Staffing repositories cover the back-office subsystem that assigns
// employees to work concerts: posts (roles with a salary), staff
// members, and shifts linking a staff member to a concert.

// PostRepo persists salary-bearing roles.
type PostRepo struct{ db *sql.DB }

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) Create(ctx context.Context, p *model.Post) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO posts (title, salary_cents) VALUES (?, ?)", p.Title, p.SalaryCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	var p model.Post
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, salary_cents FROM posts WHERE id = ?", id).
		Scan(&p.ID, &p.Title, &p.SalaryCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all posts ordered by salary, mirroring the back-office
// default ordering.
func (r *PostRepo) List(ctx context.Context) ([]*model.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, salary_cents FROM posts ORDER BY salary_cents")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Post
	for rows.Next() {
		p := new(model.Post)
		if err := rows.Scan(&p.ID, &p.Title, &p.SalaryCents); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostRepo) Update(ctx context.Context, p *model.Post) error {
	if _, err := r.GetByID(ctx, p.ID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE posts SET title = ?, salary_cents = ? WHERE id = ?", p.Title, p.SalaryCents, p.ID)
	return err
}

func (r *PostRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPostNotFound
	}
	return nil
}

// StaffRepo persists employees.
type StaffRepo struct{ db *sql.DB }

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{db: db} }

func (r *StaffRepo) Create(ctx context.Context, s *model.Staff) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO staff (first_name, last_name, father_name, phone, post_id) VALUES (?, ?, ?, ?, ?)",
		s.FirstName, s.LastName, s.FatherName, s.Phone, s.PostID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id uint64) (*model.Staff, error) {
	var s model.Staff
	err := r.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, father_name, phone, post_id FROM staff WHERE id = ?", id).
		Scan(&s.ID, &s.FirstName, &s.LastName, &s.FatherName, &s.Phone, &s.PostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns staff ordered by last name then first name, optionally
// narrowed by a search over names and phone number.
func (r *StaffRepo) List(ctx context.Context, search string) ([]*model.Staff, error) {
	q := "SELECT id, first_name, last_name, father_name, phone, post_id FROM staff"
	args := []any{}
	if search != "" {
		q += " WHERE LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ?"
		pat := "%" + lower(search) + "%"
		args = append(args, pat, pat, pat)
	}
	q += " ORDER BY last_name, first_name, father_name"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Staff
	for rows.Next() {
		s := new(model.Staff)
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.FatherName, &s.Phone, &s.PostID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StaffRepo) Update(ctx context.Context, s *model.Staff) error {
	if _, err := r.GetByID(ctx, s.ID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE staff SET first_name = ?, last_name = ?, father_name = ?, phone = ?, post_id = ? WHERE id = ?",
		s.FirstName, s.LastName, s.FatherName, s.Phone, s.PostID, s.ID)
	return err
}

func (r *StaffRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM staff WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// ShiftRepo persists concert work assignments.
type ShiftRepo struct{ db *sql.DB }

func NewShiftRepo(db *sql.DB) *ShiftRepo { return &ShiftRepo{db: db} }

func (r *ShiftRepo) Create(ctx context.Context, s *model.Shift) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO shifts (hours, staff_id, concert_id) VALUES (?, ?, ?)",
		s.Hours, s.StaffID, s.ConcertID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

func (r *ShiftRepo) GetByID(ctx context.Context, id uint64) (*model.Shift, error) {
	var s model.Shift
	err := r.db.QueryRowContext(ctx,
		"SELECT id, hours, staff_id, concert_id FROM shifts WHERE id = ?", id).
		Scan(&s.ID, &s.Hours, &s.StaffID, &s.ConcertID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns every shift, grouped by concert.
func (r *ShiftRepo) List(ctx context.Context) ([]*model.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, hours, staff_id, concert_id FROM shifts ORDER BY concert_id, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Shift
	for rows.Next() {
		s := new(model.Shift)
		if err := rows.Scan(&s.ID, &s.Hours, &s.StaffID, &s.ConcertID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListByConcert returns the shifts scheduled for one concert.
func (r *ShiftRepo) ListByConcert(ctx context.Context, concertID uint64) ([]*model.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, hours, staff_id, concert_id FROM shifts WHERE concert_id = ? ORDER BY id", concertID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Shift
	for rows.Next() {
		s := new(model.Shift)
		if err := rows.Scan(&s.ID, &s.Hours, &s.StaffID, &s.ConcertID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ShiftRepo) Update(ctx context.Context, s *model.Shift) error {
	if _, err := r.GetByID(ctx, s.ID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE shifts SET hours = ?, staff_id = ?, concert_id = ? WHERE id = ?",
		s.Hours, s.StaffID, s.ConcertID, s.ID)
	return err
}

func (r *ShiftRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrShiftNotFound
	}
	return nil
}
