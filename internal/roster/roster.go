// Package roster holds the in-memory working set of trains the service is
// currently selling seats on. The core model is single-actor by design, so
// the roster serializes access: every booking runs its capacity
// precondition and its per-seat mutations under one lock, which keeps two
// simultaneous group bookings from both passing the precondition and then
// fighting over individual seats.
package roster

import (
	"errors"
	"sync"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

// ErrTrainNotFound is returned when no train with the given number is
// loaded in the roster.
var ErrTrainNotFound = errors.New("train not found in roster")

// Roster maps train numbers to live train state.
type Roster struct {
	mu     sync.RWMutex
	trains map[int]*model.Train
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{trains: make(map[int]*model.Train)}
}

// Put adds a train, replacing any train with the same number.
func (r *Roster) Put(t *model.Train) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trains[t.Number] = t
}

// Remove drops a train from the roster. Removing an absent train is a no-op.
func (r *Roster) Remove(number int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.trains, number)
}

// WithTrain runs fn on the named train while holding the roster lock, so a
// whole booking or unbooking transaction is atomic with respect to other
// requests. fn must not retain the train past its return.
func (r *Roster) WithTrain(number int, fn func(*model.Train) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trains[number]
	if !ok {
		return ErrTrainNotFound
	}
	return fn(t)
}

// Infos returns the metadata of all loaded trains in departure-ascending
// order, for the train listing.
func (r *Roster) Infos() []model.TrainInfo {
	r.mu.RLock()
	trains := make([]*model.Train, 0, len(r.trains))
	for _, t := range r.trains {
		trains = append(trains, t)
	}
	r.mu.RUnlock()

	model.SortByDeparture(trains)
	infos := make([]model.TrainInfo, len(trains))
	for i, t := range trains {
		infos[i] = t.Info()
	}
	return infos
}

// States snapshots every loaded train in departure-ascending order, for
// persistence sweeps.
func (r *Roster) States() []model.TrainState {
	r.mu.RLock()
	trains := make([]*model.Train, 0, len(r.trains))
	for _, t := range r.trains {
		trains = append(trains, t)
	}
	r.mu.RUnlock()

	model.SortByDeparture(trains)
	states := make([]model.TrainState, len(trains))
	for i, t := range trains {
		states[i] = t.State()
	}
	return states
}
