package router

import (
	"context"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/concert-ticket-sales/internal/config"
	"github.com/iliyamo/concert-ticket-sales/internal/handler"
	"github.com/iliyamo/concert-ticket-sales/internal/model"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
	"github.com/iliyamo/concert-ticket-sales/internal/service"
)

type stubOrderPlacer struct{}

func (stubOrderPlacer) PlaceOrder(context.Context, uint64, service.PlaceOrderInput) (*model.TicketOrder, error) {
	return nil, repository.ErrConcertNotFound
}
func (stubOrderPlacer) GetOrder(context.Context, uint64) (*model.TicketOrder, error) {
	return nil, repository.ErrOrderNotFound
}

func registeredRoutes(e *echo.Echo) map[string]bool {
	out := make(map[string]bool)
	for _, r := range e.Routes() {
		out[r.Method+" "+r.Path] = true
	}
	return out
}

func TestStorefrontRoutesRegistered(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e)
	RegisterStorefront(e,
		handler.NewStorefrontHandler(repository.NewConcertRepo(nil)),
		handler.NewPurchaseHandler(stubOrderPlacer{}),
		config.CacheConfig{}, config.RateLimitConfig{}, nil)

	routes := registeredRoutes(e)
	for _, want := range []string{
		"GET /",
		"GET /tickets",
		"GET /concert/:id",
		"GET /buy-ticket/:id",
		"POST /buy-ticket/:id",
		"GET /order-success/:id",
		"GET /healthz",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestAdminRoutesCoverEveryEntityVerb(t *testing.T) {
	e := echo.New()
	cat := handler.NewCatalogHandler(
		repository.NewCategoryRepo(nil), repository.NewArtistRepo(nil), repository.NewVenueRepo(nil))
	con := handler.NewConcertAdminHandler(
		repository.NewConcertRepo(nil), repository.NewTicketRepo(nil),
		repository.NewArtistRepo(nil), repository.NewVenueRepo(nil), repository.NewCategoryRepo(nil))
	ord := handler.NewOrderAdminHandler(repository.NewOrderRepo(nil))
	stf := handler.NewStaffingHandler(
		repository.NewPostRepo(nil), repository.NewStaffRepo(nil),
		repository.NewShiftRepo(nil), repository.NewConcertRepo(nil))
	RegisterAdmin(e, "secret", cat, con, ord, stf)

	routes := registeredRoutes(e)

	// Full CRUD entities: list, create, get, update, delete.
	for _, entity := range []string{"categories", "artists", "venues", "concerts", "tickets", "posts", "staff", "shifts"} {
		assert.True(t, routes["GET /v1/admin/"+entity], "missing list for %s", entity)
		assert.True(t, routes["POST /v1/admin/"+entity], "missing create for %s", entity)
		assert.True(t, routes["GET /v1/admin/"+entity+"/:id"], "missing get for %s", entity)
		assert.True(t, routes["PUT /v1/admin/"+entity+"/:id"], "missing update for %s", entity)
		assert.True(t, routes["DELETE /v1/admin/"+entity+"/:id"], "missing delete for %s", entity)
	}

	// Orders are created by the storefront only: no POST route.
	assert.True(t, routes["GET /v1/admin/orders"])
	assert.True(t, routes["GET /v1/admin/orders/:id"])
	assert.True(t, routes["PUT /v1/admin/orders/:id"])
	assert.True(t, routes["DELETE /v1/admin/orders/:id"])
	assert.False(t, routes["POST /v1/admin/orders"])
}
