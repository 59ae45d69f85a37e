package model

import (
	"fmt"
	"sort"
	"time"
)

// Train is an ordered sequence of carriages plus the timetable metadata
// shown to travellers. Carriage numbers are 1-based everywhere in the API
// to match what is printed on the physical carriages.
type Train struct {
	Number      int
	Departure   time.Time
	Arrival     time.Time
	Origin      string
	Destination string
	Carriages   []*Carriage
}

// TrainInfo is the immutable metadata snapshot of a train taken when a
// booking is recorded. Ledger entries and tickets carry it so they stay
// meaningful even if the live roster changes.
type TrainInfo struct {
	Number      int       `json:"number"`
	Departure   time.Time `json:"departure"`
	Arrival     time.Time `json:"arrival"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
}

// NewTrain assembles a train and stamps each carriage with its 1-based
// position. Carriages are never added or removed afterwards.
func NewTrain(number int, departure, arrival time.Time, origin, destination string, carriages []*Carriage) *Train {
	for i, c := range carriages {
		c.Number = i + 1
	}
	return &Train{
		Number:      number,
		Departure:   departure,
		Arrival:     arrival,
		Origin:      origin,
		Destination: destination,
		Carriages:   carriages,
	}
}

// Info returns the metadata snapshot used by ledger entries and tickets.
func (t *Train) Info() TrainInfo {
	return TrainInfo{
		Number:      t.Number,
		Departure:   t.Departure,
		Arrival:     t.Arrival,
		Origin:      t.Origin,
		Destination: t.Destination,
	}
}

// Carriage resolves a 1-based carriage number. Returns
// ErrCarriageOutOfRange when the train has no such carriage.
func (t *Train) Carriage(number int) (*Carriage, error) {
	if number < 1 || number > len(t.Carriages) {
		return nil, fmt.Errorf("%w: carriage %d of %d", ErrCarriageOutOfRange, number, len(t.Carriages))
	}
	return t.Carriages[number-1], nil
}

// BookPassenger books a single seat in the given carriage. Carriage and
// seat errors propagate unchanged.
func (t *Train) BookPassenger(carriageNum, seatNum int, name string) error {
	car, err := t.Carriage(carriageNum)
	if err != nil {
		return err
	}
	return car.BookSeat(name, seatNum)
}

// UnbookBySeat clears a seat in the given carriage. Clearing an empty seat
// is a no-op by design.
func (t *Train) UnbookBySeat(carriageNum, seatNum int) error {
	car, err := t.Carriage(carriageNum)
	if err != nil {
		return err
	}
	return car.UnbookSeat(seatNum)
}

// UnbookByName finds the single seat booked under name in the given
// carriage, clears it, and returns its seat number so the caller can remove
// the matching ledger entry. Lookup errors (ErrPassengerNotFound,
// ErrAmbiguousName) propagate unchanged.
func (t *Train) UnbookByName(carriageNum int, name string) (int, error) {
	car, err := t.Carriage(carriageNum)
	if err != nil {
		return 0, err
	}
	seat, err := car.SeatByName(name)
	if err != nil {
		return 0, err
	}
	seat.Unbook()
	return seat.Number, nil
}

// Less orders trains by departure time ascending.
func (t *Train) Less(other *Train) bool {
	return t.Departure.Before(other.Departure)
}

// SortByDeparture sorts a roster in place into departure-ascending order.
// The sort is stable so trains departing at the same instant keep their
// relative order.
func SortByDeparture(trains []*Train) {
	sort.SliceStable(trains, func(i, j int) bool {
		return trains[i].Less(trains[j])
	})
}
