// Package demo generates random but plausible trains for development and
// seeding.  The generated fleet mirrors a small Swedish regional operator:
// short trains, a handful of common carriage layouts and departures spread
// over the coming days.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

var stations = []string{
	"Stockholm",
	"Göteborg",
	"Malmö",
	"Uppsala",
	"Linköping",
	"Örebro",
	"Lund",
	"Umeå",
	"Sundsvall",
	"Östersund",
}

var layouts = []string{"1+2", "2+2", "2+3"}

// RandomTrain builds one train with the given number.  Origin and
// destination are distinct stations, the departure lies within the next two
// weeks and the train has 2 to 6 carriages of 8 to 15 rows each.
func RandomTrain(rng *rand.Rand, number int) *model.Train {
	oi := rng.Intn(len(stations))
	di := rng.Intn(len(stations) - 1)
	if di >= oi {
		di++
	}

	dep := time.Now().UTC().Truncate(5 * time.Minute).
		Add(time.Duration(rng.Intn(14*24*12)) * 5 * time.Minute)
	arr := dep.Add(time.Duration(1+rng.Intn(8)) * time.Hour)

	numCars := 2 + rng.Intn(5)
	cars := make([]*model.Carriage, 0, numCars)
	for i := 0; i < numCars; i++ {
		layout := layouts[rng.Intn(len(layouts))]
		rows := 8 + rng.Intn(8)
		car, err := model.NewCarriage(layout, rows, i+1)
		if err != nil {
			// layouts above are all valid; reaching this is a programming error
			panic(fmt.Sprintf("demo: bad layout %q: %v", layout, err))
		}
		cars = append(cars, car)
	}

	return model.NewTrain(number, dep, arr, stations[oi], stations[di], cars)
}

// Fleet generates n trains with distinct numbers drawn from 1-999.  n is
// capped at 999.
func Fleet(rng *rand.Rand, n int) []*model.Train {
	if n > 999 {
		n = 999
	}
	nums := rng.Perm(999)[:n]
	trains := make([]*model.Train, n)
	for i, num := range nums {
		trains[i] = RandomTrain(rng, num+1)
	}
	return trains
}

// FleetSize picks a random fleet size in the range a development session
// typically works with.
func FleetSize(rng *rand.Rand) int {
	return 5 + rng.Intn(13) // 5..17
}
