// Package repository contains data access logic separated from HTTP
// handlers.  Each entity gets a repository struct bound to a sql.DB;
// lookups that miss return the sentinel errors below so that handlers
// can map failures to the right HTTP status without inspecting SQL
// internals.
package repository

import (
	"errors"
	"strings"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrConcertNotFound  = errors.New("concert not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrShiftNotFound    = errors.New("shift not found")

	// ErrInsufficientStock is returned when a purchase requests more
	// units than the ticket has remaining.  The purchase transaction is
	// rolled back so no order row or partial decrement survives.
	ErrInsufficientStock = errors.New("insufficient ticket stock")

	// ErrEmailExists is returned when an operator account with the same
	// email already exists.
	ErrEmailExists = errors.New("email already exists")
)

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}

// lower shortens the strings.ToLower calls sprinkled through search
// queries.
func lower(s string) string { return strings.ToLower(s) }
