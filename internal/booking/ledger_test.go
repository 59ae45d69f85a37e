package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

func entry(train, carriage, seat int, passenger string) Booking {
	return Booking{
		ID:             uuid.New(),
		GroupRef:       uuid.New(),
		Passenger:      passenger,
		SeatNumber:     seat,
		CarriageNumber: carriage,
		Train:          model.TrainInfo{Number: train, Origin: "Lund", Destination: "Malmö"},
		RecordedAt:     time.Now().UTC(),
	}
}

func TestLedgerRemoveEmpty(t *testing.T) {
	l := NewLedger()
	if _, err := l.Remove(1, 1, 1); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Remove on empty ledger error = %v, want ErrBookingNotFound", err)
	}
}

func TestLedgerRemoveSingleMatch(t *testing.T) {
	l := NewLedger()
	l.Append(entry(5, 2, 14, "Alice"))
	l.Append(entry(5, 2, 15, "Bob"))

	removed, err := l.Remove(5, 2, 14)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.Passenger != "Alice" {
		t.Errorf("removed passenger = %q, want Alice", removed.Passenger)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if _, err := l.Remove(5, 2, 14); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("second Remove error = %v, want ErrBookingNotFound", err)
	}
}

// Two entries for the same seat mean the ledger was corrupted; Remove must
// refuse to touch either of them.
func TestLedgerRemoveDuplicate(t *testing.T) {
	l := NewLedger()
	l.Append(entry(5, 2, 14, "Alice"))
	l.Append(entry(5, 2, 14, "Alice"))

	if _, err := l.Remove(5, 2, 14); !errors.Is(err, ErrDuplicateBooking) {
		t.Fatalf("Remove error = %v, want ErrDuplicateBooking", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d after refused removal, want 2", l.Len())
	}
}

func TestBookingEqualIgnoresIDs(t *testing.T) {
	a := entry(5, 2, 14, "Alice")
	b := entry(5, 2, 14, "Alice")
	if !a.Equal(b) {
		t.Error("entries with same seat key compare unequal")
	}
	c := entry(5, 2, 15, "Alice")
	if a.Equal(c) {
		t.Error("entries with different seats compare equal")
	}
	d := entry(6, 2, 14, "Alice")
	if a.Equal(d) {
		t.Error("entries on different trains compare equal")
	}
}

func TestLedgerEntriesIsACopy(t *testing.T) {
	l := NewLedger()
	l.Append(entry(1, 1, 1, "Alice"))
	got := l.Entries()
	got[0].Passenger = "Mallory"
	if l.Entries()[0].Passenger != "Alice" {
		t.Error("mutating the returned slice changed ledger state")
	}
}
