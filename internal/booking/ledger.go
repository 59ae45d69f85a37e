// Package booking implements the group booking allocator and the booking
// ledger. The ledger is the session's record of completed bookings, kept
// separately from seat state so reporting and ticket export do not have to
// walk the roster. It is an explicit object passed by reference, never an
// ambient singleton.
package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

// ErrBookingNotFound is returned by Remove when no entry matches the
// (train, carriage, seat) key. Callers treat this as non-fatal: the seat
// may legitimately have been booked before the ledger was opened.
var ErrBookingNotFound = errors.New("no matching booking in ledger")

// ErrDuplicateBooking is returned by Remove when more than one entry
// matches the key. That means the same seat was recorded twice, which the
// carriage's occupancy check should have made impossible, so it is an
// integrity violation rather than a user error. Nothing is removed.
var ErrDuplicateBooking = errors.New("duplicate booking entries in ledger")

// Booking is one ledger entry: a passenger placed in a specific seat of a
// specific carriage, together with the train metadata snapshot taken at
// booking time. GroupRef ties together all entries created by a single
// allocator run.
type Booking struct {
	ID             uuid.UUID       `json:"id"`
	GroupRef       uuid.UUID       `json:"group_ref"`
	Passenger      string          `json:"passenger"`
	SeatNumber     int             `json:"seat_number"`
	CarriageNumber int             `json:"carriage_number"`
	Train          model.TrainInfo `json:"train"`
	RecordedAt     time.Time       `json:"recorded_at"`
}

// Equal reports ledger-entry equality: same carriage number, seat number,
// passenger name and train number. IDs and timestamps do not participate.
func (b Booking) Equal(other Booking) bool {
	return b.CarriageNumber == other.CarriageNumber &&
		b.SeatNumber == other.SeatNumber &&
		b.Passenger == other.Passenger &&
		b.Train.Number == other.Train.Number
}

// Ledger holds all bookings recorded in the current session in append
// order. It is process-lifetime state, reset on restart.
type Ledger struct {
	entries []Booking
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append records a booking unconditionally.
func (l *Ledger) Append(b Booking) {
	l.entries = append(l.entries, b)
}

// Remove deletes the single entry matching the (train, carriage, seat) key
// and returns it. Zero matches yields ErrBookingNotFound; more than one
// yields ErrDuplicateBooking and removes nothing.
func (l *Ledger) Remove(trainNumber, carriageNumber, seatNumber int) (Booking, error) {
	idx := -1
	for i, e := range l.entries {
		if e.Train.Number != trainNumber || e.CarriageNumber != carriageNumber || e.SeatNumber != seatNumber {
			continue
		}
		if idx >= 0 {
			return Booking{}, ErrDuplicateBooking
		}
		idx = i
	}
	if idx < 0 {
		return Booking{}, ErrBookingNotFound
	}
	removed := l.entries[idx]
	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	return removed, nil
}

// Entries returns a copy of all ledger entries in append order.
func (l *Ledger) Entries() []Booking {
	out := make([]Booking, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded bookings.
func (l *Ledger) Len() int {
	return len(l.entries)
}
