package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/mlindqv/train-seat-booking/internal/booking"
	"github.com/mlindqv/train-seat-booking/internal/config"
	"github.com/mlindqv/train-seat-booking/internal/database"
	"github.com/mlindqv/train-seat-booking/internal/demo"
	"github.com/mlindqv/train-seat-booking/internal/handler"
	"github.com/mlindqv/train-seat-booking/internal/middleware"
	"github.com/mlindqv/train-seat-booking/internal/model"
	"github.com/mlindqv/train-seat-booking/internal/queue"
	"github.com/mlindqv/train-seat-booking/internal/repository"
	"github.com/mlindqv/train-seat-booking/internal/roster"
	"github.com/mlindqv/train-seat-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	trainRepo := repository.NewTrainRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	if err := trainRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("train schema: %v", err)
	}
	if err := userRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("auth schema: %v", err)
	}

	ros := roster.New()
	states, err := trainRepo.LoadAll(ctx)
	if err != nil {
		log.Fatalf("load trains: %v", err)
	}
	for _, st := range states {
		t, err := model.TrainFromState(st)
		if err != nil {
			log.Printf("skipping stored train %d: %v", st.Number, err)
			continue
		}
		ros.Put(t)
	}
	log.Printf("roster loaded with %d trains", len(states))

	// An empty roster can be seeded with a random fleet for development.
	if len(states) == 0 && cfg.SeedTrains > 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for _, t := range demo.Fleet(rng, cfg.SeedTrains) {
			if err := trainRepo.Save(ctx, t.State()); err != nil {
				log.Fatalf("seed train %d: %v", t.Number, err)
			}
			ros.Put(t)
		}
		log.Printf("seeded %d demo trains", cfg.SeedTrains)
	}

	ledger := booking.NewLedger()
	alloc := booking.NewAllocator(ledger)

	// Redis is optional: when unreachable the cache and rate limiter turn
	// into no-op middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// The ticket consumer drains booking events into logs/ticket.log and
	// reconnects on broker failures; it never returns in normal operation.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(rateMW)

	authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	trainH := handler.NewTrainHandler(ros, trainRepo)
	bookH := handler.NewBookingHandler(ros, trainRepo, ledger, alloc)
	ticketH := handler.NewTicketHandler(ros, ledger)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterTrains(e, trainH, bookH, ticketH, cfg.JWTSecret, cacheMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
