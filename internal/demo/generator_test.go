package demo

import (
	"math/rand"
	"testing"
)

func TestRandomTrainIsValid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		tr := RandomTrain(rng, i+1)
		if tr.Origin == tr.Destination {
			t.Errorf("train %d travels %s -> %s", tr.Number, tr.Origin, tr.Destination)
		}
		if !tr.Arrival.After(tr.Departure) {
			t.Errorf("train %d arrives before departing", tr.Number)
		}
		if n := len(tr.Carriages); n < 2 || n > 6 {
			t.Errorf("train %d has %d carriages, want 2..6", tr.Number, n)
		}
		for _, car := range tr.Carriages {
			if car.Rows < 8 || car.Rows > 15 {
				t.Errorf("carriage has %d rows, want 8..15", car.Rows)
			}
			if car.RemainingSeats() != car.TotalSeats() {
				t.Error("generated carriage has occupied seats")
			}
		}
	}
}

func TestFleetNumbersAreDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	fleet := Fleet(rng, 50)
	if len(fleet) != 50 {
		t.Fatalf("len(fleet) = %d, want 50", len(fleet))
	}
	seen := make(map[int]bool, len(fleet))
	for _, tr := range fleet {
		if tr.Number < 1 || tr.Number > 999 {
			t.Errorf("train number %d outside 1..999", tr.Number)
		}
		if seen[tr.Number] {
			t.Errorf("duplicate train number %d", tr.Number)
		}
		seen[tr.Number] = true
	}
}

func TestFleetSizeRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		if n := FleetSize(rng); n < 5 || n > 17 {
			t.Fatalf("FleetSize() = %d, want 5..17", n)
		}
	}
}
