// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/concert-ticket-sales/internal/config"
	"github.com/iliyamo/concert-ticket-sales/internal/handler"
	"github.com/iliyamo/concert-ticket-sales/internal/middleware"
)

// RegisterRoutes registers routes that need no dependencies beyond the
// Echo instance itself.  Trailing slashes are stripped before routing,
// so /concert/5/ and /concert/5 hit the same handler.
func RegisterRoutes(e *echo.Echo) {
	e.Pre(echomw.RemoveTrailingSlash())
	e.GET("/healthz", handler.Health)
}

// RegisterStorefront registers the public pages: the concert listing
// (served at both / and /tickets), the concert detail, the purchase
// endpoints and the order confirmation.  Browse responses are cached in
// Redis and every storefront route sits behind the token bucket.
func RegisterStorefront(e *echo.Echo, s *handler.StorefrontHandler, p *handler.PurchaseHandler,
	cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	limit := middleware.NewTokenBucket(rlCfg, rdb)
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	e.GET("/", s.ListConcerts, limit, cache)
	e.GET("/tickets", s.ListConcerts, limit, cache)
	e.GET("/concert/:id", s.ConcertDetail, limit, cache)

	// The purchase flow is never cached: stock and orders must be live.
	e.GET("/buy-ticket/:id", p.BuyTicketPage, limit)
	e.POST("/buy-ticket/:id", p.BuyTicket, limit)
	e.GET("/order-success/:id", p.OrderSuccess, limit)
}

// RegisterAuth registers the operator auth endpoints.  Register, login,
// refresh and logout need no session; /v1/me requires a valid access
// token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterAdmin registers the back-office CRUD surface under
// /v1/admin.  Every route requires a valid access token carrying the
// ADMIN role.
func RegisterAdmin(e *echo.Echo, jwtSecret string,
	cat *handler.CatalogHandler, con *handler.ConcertAdminHandler,
	ord *handler.OrderAdminHandler, stf *handler.StaffingHandler) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	g.GET("/categories", cat.ListCategories)
	g.POST("/categories", cat.CreateCategory)
	g.GET("/categories/:id", cat.GetCategory)
	g.PUT("/categories/:id", cat.UpdateCategory)
	g.DELETE("/categories/:id", cat.DeleteCategory)

	g.GET("/artists", cat.ListArtists)
	g.POST("/artists", cat.CreateArtist)
	g.GET("/artists/:id", cat.GetArtist)
	g.PUT("/artists/:id", cat.UpdateArtist)
	g.DELETE("/artists/:id", cat.DeleteArtist)

	g.GET("/venues", cat.ListVenues)
	g.POST("/venues", cat.CreateVenue)
	g.GET("/venues/:id", cat.GetVenue)
	g.PUT("/venues/:id", cat.UpdateVenue)
	g.DELETE("/venues/:id", cat.DeleteVenue)

	g.GET("/concerts", con.ListConcerts)
	g.POST("/concerts", con.CreateConcert)
	g.GET("/concerts/:id", con.GetConcert)
	g.PUT("/concerts/:id", con.UpdateConcert)
	g.DELETE("/concerts/:id", con.DeleteConcert)

	g.GET("/tickets", con.ListTickets)
	g.POST("/tickets", con.CreateTicket)
	g.GET("/tickets/:id", con.GetTicket)
	g.PUT("/tickets/:id", con.UpdateTicket)
	g.DELETE("/tickets/:id", con.DeleteTicket)

	g.GET("/orders", ord.ListOrders)
	g.GET("/orders/:id", ord.GetOrder)
	g.PUT("/orders/:id", ord.UpdateOrderContact)
	g.DELETE("/orders/:id", ord.DeleteOrder)

	g.GET("/posts", stf.ListPosts)
	g.POST("/posts", stf.CreatePost)
	g.GET("/posts/:id", stf.GetPost)
	g.PUT("/posts/:id", stf.UpdatePost)
	g.DELETE("/posts/:id", stf.DeletePost)

	g.GET("/staff", stf.ListStaff)
	g.POST("/staff", stf.CreateStaff)
	g.GET("/staff/:id", stf.GetStaff)
	g.PUT("/staff/:id", stf.UpdateStaff)
	g.DELETE("/staff/:id", stf.DeleteStaff)

	g.GET("/shifts", stf.ListShifts)
	g.POST("/shifts", stf.CreateShift)
	g.GET("/shifts/:id", stf.GetShift)
	g.PUT("/shifts/:id", stf.UpdateShift)
	g.DELETE("/shifts/:id", stf.DeleteShift)
}
