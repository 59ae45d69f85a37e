// Command seed populates the database with a random demo fleet.  It is a
// development tool: point it at the same database as the server, run it once
// and restart the server to pick the trains up.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mlindqv/train-seat-booking/internal/database"
	"github.com/mlindqv/train-seat-booking/internal/demo"
	"github.com/mlindqv/train-seat-booking/internal/repository"
)

func main() {
	var (
		n    = flag.Int("n", 0, "number of trains to generate (0 = random 5-17)")
		seed = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
		wipe = flag.Bool("wipe", false, "delete existing trains first")
	)
	flag.Parse()

	_ = godotenv.Load()
	db, err := database.Open(
		mustEnv("DB_USER"), os.Getenv("DB_PASS"),
		mustEnv("DB_HOST"), mustEnv("DB_PORT"), mustEnv("DB_NAME"))
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo := repository.NewTrainRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	if *wipe {
		states, err := repo.LoadAll(ctx)
		if err != nil {
			log.Fatalf("load trains: %v", err)
		}
		for _, st := range states {
			if err := repo.Delete(ctx, st.Number); err != nil {
				log.Fatalf("delete train %d: %v", st.Number, err)
			}
		}
		log.Printf("wiped %d trains", len(states))
	}

	src := *seed
	if src == 0 {
		src = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(src))

	count := *n
	if count <= 0 {
		count = demo.FleetSize(rng)
	}
	for _, t := range demo.Fleet(rng, count) {
		if err := repo.Save(ctx, t.State()); err != nil {
			log.Fatalf("save train %d: %v", t.Number, err)
		}
		log.Printf("train %3d  %s -> %s  dep %s  %d carriages",
			t.Number, t.Origin, t.Destination,
			t.Departure.Format("2006-01-02 15:04"), len(t.Carriages))
	}
	log.Printf("seeded %d trains", count)
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
