// Package handler defines the HTTP handlers for the storefront, the
// purchase flow and the back-office surface.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

// validate checks struct tags on bound request DTOs.
var validate = validator.New()

// reqCtx bounds a handler's database work to a timeout derived from the
// request context.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// notFoundErr reports whether err is one of the repository's not-found
// sentinels, so handlers can collapse them into a 404.
func notFoundErr(err error) bool {
	for _, sentinel := range []error{
		repository.ErrCategoryNotFound,
		repository.ErrArtistNotFound,
		repository.ErrVenueNotFound,
		repository.ErrConcertNotFound,
		repository.ErrTicketNotFound,
		repository.ErrOrderNotFound,
		repository.ErrPostNotFound,
		repository.ErrStaffNotFound,
		repository.ErrShiftNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// writeRepoErr maps a repository error onto the JSON error contract:
// 404 for the not-found sentinels, 500 for everything else.
func writeRepoErr(c echo.Context, err error) error {
	if notFoundErr(err) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// queryID reads an optional numeric query parameter, returning 0 when
// absent or malformed.
func queryID(c echo.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
