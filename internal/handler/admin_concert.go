package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

// ConcertAdminHandler covers the back-office CRUD for concerts and
// their ticket categories.
type ConcertAdminHandler struct {
	Concerts   *repository.ConcertRepo
	Tickets    *repository.TicketRepo
	Artists    *repository.ArtistRepo
	Venues     *repository.VenueRepo
	Categories *repository.CategoryRepo
}

func NewConcertAdminHandler(con *repository.ConcertRepo, tic *repository.TicketRepo,
	art *repository.ArtistRepo, ven *repository.VenueRepo, cat *repository.CategoryRepo) *ConcertAdminHandler {
	if con == nil || tic == nil || art == nil || ven == nil || cat == nil {
		panic("nil repository passed to NewConcertAdminHandler")
	}
	return &ConcertAdminHandler{Concerts: con, Tickets: tic, Artists: art, Venues: ven, Categories: cat}
}

// ----- concerts -----

type concertReq struct {
	ArtistID    uint64    `json:"artist_id" validate:"required"`
	VenueID     uint64    `json:"venue_id" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Description string    `json:"description"`
}

// bindConcert binds and validates the request, checking that the
// referenced artist and venue exist and that the times are ordered.
func (h *ConcertAdminHandler) bindConcert(c echo.Context) (*concertReq, error) {
	var req concertReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "artist_id, venue_id, start_time and end_time required"})
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time must be after start_time"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Artists.GetByID(ctx, req.ArtistID); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown artist"})
	}
	if _, err := h.Venues.GetByID(ctx, req.VenueID); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown venue"})
	}
	return &req, nil
}

// ListConcerts returns the back-office concert list, narrowed by
// ?search= (artist name / venue city), ?city=, ?from= and ?to= (both
// YYYY-MM-DD, the range applies to start time).
func (h *ConcertAdminHandler) ListConcerts(c echo.Context) error {
	q := repository.ConcertSearchQuery{
		Search: c.QueryParam("search"),
		City:   c.QueryParam("city"),
		From:   queryDate(c, "from"),
	}
	if to := queryDate(c, "to"); to != nil {
		// Make the upper bound inclusive of the whole day.
		end := to.AddDate(0, 0, 1)
		q.To = &end
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Concerts.Search(ctx, q)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"concerts": out})
}

func (h *ConcertAdminHandler) GetConcert(c echo.Context) error {
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

func (h *ConcertAdminHandler) CreateConcert(c echo.Context) error {
	req, errResp := h.bindConcert(c)
	if req == nil {
		return errResp
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	concert := &model.Concert{
		ArtistID:    req.ArtistID,
		VenueID:     req.VenueID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if err := h.Concerts.Create(ctx, concert); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, concert)
}

func (h *ConcertAdminHandler) UpdateConcert(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	req, errResp := h.bindConcert(c)
	if req == nil {
		return errResp
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	concert := &model.Concert{
		ID:          id,
		ArtistID:    req.ArtistID,
		VenueID:     req.VenueID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if err := h.Concerts.Update(ctx, concert); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, concert)
}

// DeleteConcert removes a concert with its tickets, orders and shifts.
func (h *ConcertAdminHandler) DeleteConcert(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Concerts.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- tickets -----

type ticketReq struct {
	ConcertID  uint64 `json:"concert_id" validate:"required"`
	CategoryID uint64 `json:"category_id" validate:"required"`
	Price      string `json:"price" validate:"required"`
	Quantity   uint32 `json:"quantity" validate:"required,min=1"`
}

// ListTickets returns the back-office ticket list, narrowed by ?search=
// (artist name), ?category_id= and ?sale_date= (YYYY-MM-DD).
func (h *ConcertAdminHandler) ListTickets(c echo.Context) error {
	q := repository.TicketSearchQuery{
		Search:     c.QueryParam("search"),
		CategoryID: queryID(c, "category_id"),
		SaleDate:   queryDate(c, "sale_date"),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Tickets.Search(ctx, q)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": out})
}

func (h *ConcertAdminHandler) GetTicket(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *ConcertAdminHandler) CreateTicket(c echo.Context) error {
	var req ticketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "concert_id, category_id, price and quantity required"})
	}
	cents, err := model.ParseAmountCents(req.Price)
	if err != nil || cents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid price"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Concerts.GetByID(ctx, req.ConcertID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown concert"})
	}
	if _, err := h.Categories.GetByID(ctx, req.CategoryID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	t := &model.Ticket{
		ConcertID:  req.ConcertID,
		CategoryID: req.CategoryID,
		PriceCents: cents,
		Quantity:   req.Quantity,
	}
	if err := h.Tickets.Create(ctx, t); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

type ticketUpdateReq struct {
	CategoryID uint64 `json:"category_id" validate:"required"`
	Price      string `json:"price" validate:"required"`
	Quantity   uint32 `json:"quantity"`
}

// UpdateTicket replaces category, price and remaining quantity.  The
// sale date stays as set at creation.
func (h *ConcertAdminHandler) UpdateTicket(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req ticketUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_id and price required"})
	}
	cents, err := model.ParseAmountCents(req.Price)
	if err != nil || cents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid price"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Categories.GetByID(ctx, req.CategoryID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	t := &model.Ticket{ID: id, CategoryID: req.CategoryID, PriceCents: cents, Quantity: req.Quantity}
	if err := h.Tickets.Update(ctx, t); err != nil {
		return writeRepoErr(c, err)
	}
	updated, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTicket removes a ticket; orders against it cascade away.
func (h *ConcertAdminHandler) DeleteTicket(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Tickets.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
