package model

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func testTrain(t *testing.T, number int, dep time.Time) *Train {
	t.Helper()
	c1, err := NewCarriage("2+2", 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := NewCarriage("1+2", 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	return NewTrain(number, dep, dep.Add(3*time.Hour), "Stockholm", "Göteborg", []*Carriage{c1, c2})
}

func TestNewTrainStampsCarriageNumbers(t *testing.T) {
	tr := testTrain(t, 42, time.Now())
	for i, car := range tr.Carriages {
		if car.Number != i+1 {
			t.Errorf("carriage at index %d has number %d, want %d", i, car.Number, i+1)
		}
	}
}

func TestCarriageLookupIsOneBased(t *testing.T) {
	tr := testTrain(t, 42, time.Now())
	car, err := tr.Carriage(1)
	if err != nil {
		t.Fatalf("Carriage(1): %v", err)
	}
	if car != tr.Carriages[0] {
		t.Error("Carriage(1) is not the first carriage")
	}
	for _, n := range []int{0, -1, 3} {
		if _, err := tr.Carriage(n); !errors.Is(err, ErrCarriageOutOfRange) {
			t.Errorf("Carriage(%d) error = %v, want ErrCarriageOutOfRange", n, err)
		}
	}
}

func TestBookAndUnbookByName(t *testing.T) {
	tr := testTrain(t, 7, time.Now())
	if err := tr.BookPassenger(2, 5, "Greta"); err != nil {
		t.Fatalf("BookPassenger: %v", err)
	}
	freed, err := tr.UnbookByName(2, "Greta")
	if err != nil {
		t.Fatalf("UnbookByName: %v", err)
	}
	if freed != 5 {
		t.Errorf("freed seat = %d, want 5", freed)
	}
	if _, err := tr.UnbookByName(2, "Greta"); !errors.Is(err, ErrPassengerNotFound) {
		t.Errorf("second UnbookByName error = %v, want ErrPassengerNotFound", err)
	}
}

func TestLessOrdersByDeparture(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	early := testTrain(t, 1, base)
	late := testTrain(t, 2, base.Add(time.Hour))
	if !early.Less(late) {
		t.Error("early.Less(late) = false, want true")
	}
	if late.Less(early) {
		t.Error("late.Less(early) = true, want false")
	}
}

func TestSortByDeparture(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	trains := make([]*Train, 10)
	for i := range trains {
		trains[i] = testTrain(t, i+1, base.Add(time.Duration(i)*time.Minute))
	}
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(trains), func(i, j int) { trains[i], trains[j] = trains[j], trains[i] })

	SortByDeparture(trains)
	for i := 1; i < len(trains); i++ {
		if trains[i].Departure.Before(trains[i-1].Departure) {
			t.Fatalf("trains out of order at index %d: %v before %v",
				i, trains[i].Departure, trains[i-1].Departure)
		}
	}
}
