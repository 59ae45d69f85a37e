package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

// ErrInsufficientCapacity is returned before any seat is touched when the
// carriage does not have enough free seats for the whole group.
var ErrInsufficientCapacity = errors.New("not enough free seats in carriage")

// ErrSeatConflict is returned when the very first booking attempt hits an
// occupied seat: the single-passenger case, or a group whose starting seat
// is taken before anyone was seated. No mutation and no ledger update occur.
var ErrSeatConflict = errors.New("starting seat already booked")

// ErrNoPassengers is returned when a booking request names nobody.
var ErrNoPassengers = errors.New("no passenger names given")

// ErrNotResumable is returned by ContinueScatter when the given result is
// not a contiguity break awaiting a decision.
var ErrNotResumable = errors.New("booking result is not awaiting a scatter decision")

// Outcome classifies how an allocator run ended.
type Outcome string

const (
	// OutcomeAdjacent means every passenger got a seat in the contiguous run
	// starting at the requested seat.
	OutcomeAdjacent Outcome = "adjacent"
	// OutcomeContiguityBreak means a prefix of the group is seated and the
	// caller must decide whether to continue with scattered seats. The
	// booked prefix stands either way.
	OutcomeContiguityBreak Outcome = "contiguity_break"
	// OutcomePartialAdjacent means the caller declined scattered seats
	// after a contiguity break; the booked prefix stands.
	OutcomePartialAdjacent Outcome = "partial_adjacent"
	// OutcomeScattered means the remaining passengers were all seated on
	// non-adjacent seats after a contiguity break.
	OutcomeScattered Outcome = "scattered"
	// OutcomeScatterExhausted means the carriage ran out of candidate seats
	// mid-scatter. Seats already booked remain booked.
	OutcomeScatterExhausted Outcome = "scatter_exhausted"
)

// Result reports an allocator run: which entries were recorded, who is
// still unseated, and whether the run is suspended waiting for a scatter
// decision. Adjacency is a soft preference, so seats secured for earlier
// passengers are never rolled back when later passengers cannot be placed.
type Result struct {
	Outcome   Outcome
	GroupRef  uuid.UUID
	Booked    []Booking // ledger entries recorded by this run, in seating order
	Remaining []string  // passengers not yet seated

	// resume state, set only on OutcomeContiguityBreak
	train       *model.Train
	carriage    *model.Carriage
	carriageNum int
	startSeat   int
	failSeat    int
}

// Allocator books groups of passengers, preferring adjacent seats and
// mirroring every successful seat booking with exactly one ledger append.
// The contiguity-break confirmation is a suspension point: AttemptContiguous
// returns an OutcomeContiguityBreak result and the caller resumes with
// ContinueScatter or Decline instead of the allocator blocking on input.
type Allocator struct {
	ledger *Ledger
}

// NewAllocator returns an allocator recording into the given ledger.
func NewAllocator(ledger *Ledger) *Allocator {
	if ledger == nil {
		panic("nil ledger passed to NewAllocator")
	}
	return &Allocator{ledger: ledger}
}

// AttemptContiguous books the named passengers, in order, into consecutive
// seats starting at startSeat of the given 1-based carriage. Preconditions
// are checked before any mutation: the carriage must exist, startSeat must
// be within [1, total], and the carriage must have at least len(names) free
// seats (ErrInsufficientCapacity otherwise).
//
// A conflict on the very first attempt returns ErrSeatConflict with zero
// mutations. A failure at a later seat leaves the booked prefix in place
// and returns OutcomeContiguityBreak for the caller to resolve.
func (a *Allocator) AttemptContiguous(train *model.Train, carriageNum, startSeat int, names []string) (Result, error) {
	car, err := train.Carriage(carriageNum)
	if err != nil {
		return Result{}, err
	}
	if startSeat < 1 || startSeat > car.TotalSeats() {
		return Result{}, fmt.Errorf("%w: seat %d of %d", model.ErrSeatOutOfRange, startSeat, car.TotalSeats())
	}
	if len(names) == 0 {
		return Result{}, ErrNoPassengers
	}
	if car.RemainingSeats() < len(names) {
		return Result{}, fmt.Errorf("%w: %d needed, %d free",
			ErrInsufficientCapacity, len(names), car.RemainingSeats())
	}

	res := Result{
		Outcome:     OutcomeAdjacent,
		GroupRef:    uuid.New(),
		train:       train,
		carriage:    car,
		carriageNum: carriageNum,
		startSeat:   startSeat,
	}
	for i, name := range names {
		if err := car.BookSeat(name, startSeat+i); err != nil {
			if i == 0 {
				// Nobody seated yet: equivalent to the single-passenger
				// immediate-conflict path, not a contiguity break.
				return Result{}, fmt.Errorf("%w: seat %d", ErrSeatConflict, startSeat)
			}
			res.Outcome = OutcomeContiguityBreak
			res.Remaining = append([]string(nil), names[i:]...)
			res.failSeat = startSeat + i
			return res, nil
		}
		res.Booked = append(res.Booked, a.record(res.GroupRef, train, carriageNum, startSeat+i, name))
	}
	return res, nil
}

// ContinueScatter resumes a contiguity-broken run after the caller accepted
// non-adjacent seats. Candidate seats are tried for each remaining
// passenger in order: first every seat after the failure point up to the
// carriage's last seat, then from just before the requested starting seat
// backward to seat 1. Occupied candidates are discarded; if the candidates
// run out before everyone is seated the run ends with
// OutcomeScatterExhausted and the seats already booked stay booked.
func (a *Allocator) ContinueScatter(res Result) (Result, error) {
	if res.Outcome != OutcomeContiguityBreak || res.carriage == nil {
		return Result{}, ErrNotResumable
	}

	candidates := make([]int, 0, res.carriage.TotalSeats())
	for n := res.failSeat + 1; n <= res.carriage.TotalSeats(); n++ {
		candidates = append(candidates, n)
	}
	for n := res.startSeat - 1; n >= 1; n-- {
		candidates = append(candidates, n)
	}

	res.Outcome = OutcomeScattered
	for len(res.Remaining) > 0 {
		name := res.Remaining[0]
		seated := false
		for len(candidates) > 0 {
			seat := candidates[0]
			candidates = candidates[1:]
			if err := res.carriage.BookSeat(name, seat); err != nil {
				continue // occupied, try the next candidate
			}
			res.Booked = append(res.Booked, a.record(res.GroupRef, res.train, res.carriageNum, seat, name))
			res.Remaining = res.Remaining[1:]
			seated = true
			break
		}
		if !seated {
			res.Outcome = OutcomeScatterExhausted
			return res, nil
		}
	}
	res.Remaining = nil
	return res, nil
}

// Decline finalizes a contiguity-broken run after the caller rejected
// scattered seats. The booked prefix stands and the remaining passengers
// stay unseated.
func (a *Allocator) Decline(res Result) (Result, error) {
	if res.Outcome != OutcomeContiguityBreak {
		return Result{}, ErrNotResumable
	}
	res.Outcome = OutcomePartialAdjacent
	return res, nil
}

// record appends one ledger entry for a successful seat booking.
func (a *Allocator) record(groupRef uuid.UUID, train *model.Train, carriageNum, seatNum int, name string) Booking {
	b := Booking{
		ID:             uuid.New(),
		GroupRef:       groupRef,
		Passenger:      name,
		SeatNumber:     seatNum,
		CarriageNumber: carriageNum,
		Train:          train.Info(),
		RecordedAt:     time.Now().UTC(),
	}
	a.ledger.Append(b)
	return b
}
