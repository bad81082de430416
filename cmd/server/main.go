package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/concert-ticket-sales/internal/config"
	"github.com/iliyamo/concert-ticket-sales/internal/database"
	"github.com/iliyamo/concert-ticket-sales/internal/handler"
	"github.com/iliyamo/concert-ticket-sales/internal/queue"
	"github.com/iliyamo/concert-ticket-sales/internal/repository"
	"github.com/iliyamo/concert-ticket-sales/internal/router"
	"github.com/iliyamo/concert-ticket-sales/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.Env == "dev" {
		log.SetLevel(logrus.DebugLevel)
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.WithError(err).Fatal("schema migration failed")
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, response cache and rate limiting disabled")
	}

	// Repositories.
	categories := repository.NewCategoryRepo(db)
	artists := repository.NewArtistRepo(db)
	venues := repository.NewVenueRepo(db)
	concerts := repository.NewConcertRepo(db)
	tickets := repository.NewTicketRepo(db)
	orders := repository.NewOrderRepo(db)
	posts := repository.NewPostRepo(db)
	staff := repository.NewStaffRepo(db)
	shifts := repository.NewShiftRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Order workflow plus the event pipeline behind it.
	publisher := service.NewAMQPPublisher(log)
	orderSvc := service.NewOrderService(db, concerts, tickets, orders, publisher, log)
	go queue.StartOrderConsumer(log)

	// Handlers.
	storefront := handler.NewStorefrontHandler(concerts)
	purchase := handler.NewPurchaseHandler(orderSvc)
	auth := handler.NewAuthHandler(cfg, users, tokens)
	catalog := handler.NewCatalogHandler(categories, artists, venues)
	concertAdmin := handler.NewConcertAdminHandler(concerts, tickets, artists, venues, categories)
	orderAdmin := handler.NewOrderAdminHandler(orders)
	staffing := handler.NewStaffingHandler(posts, staff, shifts, concerts)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterStorefront(e, storefront, purchase,
		config.LoadCacheConfig(), config.LoadRateLimitConfig(), rdb)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterAdmin(e, cfg.JWTSecret, catalog, concertAdmin, orderAdmin, staffing)

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("server starting")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
