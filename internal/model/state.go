package model

import (
	"fmt"
	"time"
)

// CarriageState is the serializable form of a carriage: its layout, row
// count and the occupant of every seat in seat-number order (empty string
// for a free seat). It is what the persistence layer stores and what the
// API accepts when creating trains.
type CarriageState struct {
	Layout    string   `json:"layout"`
	Rows      int      `json:"rows"`
	Occupants []string `json:"occupants"`
}

// TrainState is the serializable form of a whole train. Snapshotting a
// train and restoring the state must reproduce identical metadata and seat
// occupancy; the repository round-trips trains through this type.
type TrainState struct {
	Number      int             `json:"number"`
	Departure   time.Time       `json:"departure"`
	Arrival     time.Time       `json:"arrival"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Carriages   []CarriageState `json:"carriages"`
}

// State snapshots the train's metadata and full seat occupancy.
func (t *Train) State() TrainState {
	st := TrainState{
		Number:      t.Number,
		Departure:   t.Departure,
		Arrival:     t.Arrival,
		Origin:      t.Origin,
		Destination: t.Destination,
		Carriages:   make([]CarriageState, len(t.Carriages)),
	}
	for i, car := range t.Carriages {
		cs := CarriageState{
			Layout:    car.Layout,
			Rows:      car.Rows,
			Occupants: make([]string, car.TotalSeats()),
		}
		for j, seat := range car.SeatsInOrder() {
			cs.Occupants[j] = seat.Passenger
		}
		st.Carriages[i] = cs
	}
	return st
}

// TrainFromState rebuilds a train from its serialized form. Layouts are
// re-validated and each occupant list must match its carriage's seat count
// exactly; a loaded occupant bypasses BookSeat because the stored state is
// already the outcome of past bookings.
func TrainFromState(st TrainState) (*Train, error) {
	carriages := make([]*Carriage, len(st.Carriages))
	for i, cs := range st.Carriages {
		car, err := NewCarriage(cs.Layout, cs.Rows, i+1)
		if err != nil {
			return nil, fmt.Errorf("carriage %d: %w", i+1, err)
		}
		if len(cs.Occupants) != car.TotalSeats() {
			return nil, fmt.Errorf("carriage %d: %d occupants for %d seats",
				i+1, len(cs.Occupants), car.TotalSeats())
		}
		for j, name := range cs.Occupants {
			car.seats[j].Passenger = name
		}
		carriages[i] = car
	}
	return NewTrain(st.Number, st.Departure, st.Arrival, st.Origin, st.Destination, carriages), nil
}
