package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

// StorefrontHandler serves the public browse pages: the concert listing
// and the concert detail with its ticket categories.
type StorefrontHandler struct {
	Concerts *repository.ConcertRepo
}

func NewStorefrontHandler(concerts *repository.ConcertRepo) *StorefrontHandler {
	if concerts == nil {
		panic("nil repository passed to NewStorefrontHandler")
	}
	return &StorefrontHandler{Concerts: concerts}
}

// ListConcerts returns every concert with artist, venue and tickets,
// ordered by start time.  Both the home page and the tickets page serve
// this payload.
func (h *StorefrontHandler) ListConcerts(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	concerts, err := h.Concerts.ListWithDetails(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"concerts": concerts})
}

// ConcertDetail returns one concert with its artist, venue and ticket
// categories ordered by price.
func (h *StorefrontHandler) ConcertDetail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	concert, err := h.Concerts.GetDetail(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, concert)
}
