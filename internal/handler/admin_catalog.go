package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
)

// CatalogHandler covers the back-office CRUD for the catalog entities
// concerts hang off of: pricing categories, artists and venues.
type CatalogHandler struct {
	Categories *repository.CategoryRepo
	Artists    *repository.ArtistRepo
	Venues     *repository.VenueRepo
}

func NewCatalogHandler(cat *repository.CategoryRepo, art *repository.ArtistRepo, ven *repository.VenueRepo) *CatalogHandler {
	if cat == nil || art == nil || ven == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{Categories: cat, Artists: art, Venues: ven}
}

// ----- categories -----

type categoryReq struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ListCategories returns categories, optionally narrowed by ?search=.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Categories.List(ctx, c.QueryParam("search"))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat := &model.Category{Name: req.Name}
	if err := h.Categories.Create(ctx, cat); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Categories.UpdateName(ctx, id, req.Name); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, model.Category{ID: id, Name: req.Name})
}

// DeleteCategory removes a category; dependent tickets and their orders
// cascade away.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Categories.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- artists -----

type artistReq struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Genre       string `json:"genre" validate:"max=50"`
}

// ListArtists returns artists narrowed by ?search= (name) and ?genre=.
func (h *CatalogHandler) ListArtists(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Artists.List(ctx, c.QueryParam("search"), c.QueryParam("genre"))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": out})
}

func (h *CatalogHandler) GetArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *CatalogHandler) CreateArtist(c echo.Context) error {
	var req artistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist fields"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a := &model.Artist{Name: req.Name, Description: req.Description, ImageURL: req.ImageURL, Genre: req.Genre}
	if err := h.Artists.Create(ctx, a); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *CatalogHandler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req artistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist fields"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a := &model.Artist{ID: id, Name: req.Name, Description: req.Description, ImageURL: req.ImageURL, Genre: req.Genre}
	if err := h.Artists.Update(ctx, a); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// DeleteArtist removes an artist with all their concerts, tickets and
// orders.
func (h *CatalogHandler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Artists.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- venues -----

type venueReq struct {
	Name     string `json:"name" validate:"required,max=150"`
	City     string `json:"city" validate:"required,max=100"`
	Address  string `json:"address" validate:"max=255"`
	Capacity uint32 `json:"capacity"`
}

// ListVenues returns venues narrowed by ?search= (name/city) and ?city=.
func (h *CatalogHandler) ListVenues(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Venues.List(ctx, c.QueryParam("search"), c.QueryParam("city"))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": out})
}

func (h *CatalogHandler) GetVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *CatalogHandler) CreateVenue(c echo.Context) error {
	var req venueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue fields"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	v := &model.Venue{Name: req.Name, City: req.City, Address: req.Address, Capacity: req.Capacity}
	if err := h.Venues.Create(ctx, v); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *CatalogHandler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req venueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue fields"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	v := &model.Venue{ID: id, Name: req.Name, City: req.City, Address: req.Address, Capacity: req.Capacity}
	if err := h.Venues.Update(ctx, v); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// DeleteVenue removes a venue with every concert scheduled there.
func (h *CatalogHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Venues.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
