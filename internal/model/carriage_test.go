package model

import (
	"errors"
	"testing"
)

func mustCarriage(t *testing.T, layout string, rows int) *Carriage {
	t.Helper()
	c, err := NewCarriage(layout, rows, 1)
	if err != nil {
		t.Fatalf("NewCarriage(%q, %d): %v", layout, rows, err)
	}
	return c
}

func TestNewCarriage(t *testing.T) {
	c := mustCarriage(t, "2+2", 5)
	if c.LeftSeats != 2 || c.RightSeats != 2 || c.Rows != 5 {
		t.Errorf("got layout %d+%d rows %d, want 2+2 rows 5", c.LeftSeats, c.RightSeats, c.Rows)
	}
	if c.TotalSeats() != 20 {
		t.Errorf("TotalSeats() = %d, want 20", c.TotalSeats())
	}
}

func TestNewCarriageInvalidLayout(t *testing.T) {
	for _, layout := range []string{"a+3", "3+b", "15+15", "3+3+3", "3", "", "+2", "2+"} {
		if _, err := NewCarriage(layout, 5, 1); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("NewCarriage(%q) error = %v, want ErrInvalidLayout", layout, err)
		}
	}
	if _, err := NewCarriage("2+2", 0, 1); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("NewCarriage with 0 rows error = %v, want ErrInvalidLayout", err)
	}
}

// Seat numbers fill each row's left side first, then its right side, before
// advancing to the next row.
func TestSeatNumbering(t *testing.T) {
	cases := []struct {
		layout string
		left   int
		right  int
	}{
		{"2+2", 2, 2},
		{"2+3", 2, 3},
		{"1+3", 1, 3},
	}
	const rows = 5
	for _, tc := range cases {
		c := mustCarriage(t, tc.layout, rows)
		rowWidth := tc.left + tc.right
		for row := 0; row < rows; row++ {
			for col := 0; col < tc.left; col++ {
				n := row*rowWidth + col + 1
				gotRow, side, gotCol, err := c.Position(n)
				if err != nil {
					t.Fatalf("%s Position(%d): %v", tc.layout, n, err)
				}
				if gotRow != row || side != SideLeft || gotCol != col {
					t.Errorf("%s seat %d at (row %d, side %v, col %d), want (row %d, left, col %d)",
						tc.layout, n, gotRow, side, gotCol, row, col)
				}
			}
			for col := 0; col < tc.right; col++ {
				n := row*rowWidth + tc.left + col + 1
				gotRow, side, gotCol, err := c.Position(n)
				if err != nil {
					t.Fatalf("%s Position(%d): %v", tc.layout, n, err)
				}
				if gotRow != row || side != SideRight || gotCol != col {
					t.Errorf("%s seat %d at (row %d, side %v, col %d), want (row %d, right, col %d)",
						tc.layout, n, gotRow, side, gotCol, row, col)
				}
			}
		}
	}
}

func TestSeatByNumberRange(t *testing.T) {
	c := mustCarriage(t, "2+3", 4) // 20 seats
	for _, n := range []int{-5, -1, 0, 21, 100} {
		if _, err := c.SeatByNumber(n); !errors.Is(err, ErrSeatOutOfRange) {
			t.Errorf("SeatByNumber(%d) error = %v, want ErrSeatOutOfRange", n, err)
		}
	}
	for n := 1; n <= 20; n++ {
		seat, err := c.SeatByNumber(n)
		if err != nil {
			t.Fatalf("SeatByNumber(%d): %v", n, err)
		}
		if seat.Number != n {
			t.Errorf("SeatByNumber(%d).Number = %d", n, seat.Number)
		}
	}
}

func TestBookingExclusivity(t *testing.T) {
	c := mustCarriage(t, "2+2", 2)
	if err := c.BookSeat("Alice", 3); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if err := c.BookSeat("Alice", 3); !errors.Is(err, ErrAlreadyBooked) {
		t.Errorf("rebooking same name error = %v, want ErrAlreadyBooked", err)
	}
	if err := c.BookSeat("Bob", 3); !errors.Is(err, ErrAlreadyBooked) {
		t.Errorf("rebooking other name error = %v, want ErrAlreadyBooked", err)
	}
	if err := c.UnbookSeat(3); err != nil {
		t.Fatalf("unbook: %v", err)
	}
	if err := c.BookSeat("Bob", 3); err != nil {
		t.Errorf("booking after unbook: %v", err)
	}
}

func TestUnbookEmptySeatIsNoOp(t *testing.T) {
	c := mustCarriage(t, "1+1", 2)
	if err := c.UnbookSeat(1); err != nil {
		t.Errorf("unbooking empty seat: %v", err)
	}
	if err := c.UnbookSeat(9); !errors.Is(err, ErrSeatOutOfRange) {
		t.Errorf("unbooking out-of-range seat error = %v, want ErrSeatOutOfRange", err)
	}
}

func TestSeatByName(t *testing.T) {
	c := mustCarriage(t, "2+2", 3)
	if _, err := c.SeatByName("Alice"); !errors.Is(err, ErrPassengerNotFound) {
		t.Errorf("empty carriage lookup error = %v, want ErrPassengerNotFound", err)
	}

	if err := c.BookSeat("Alice", 5); err != nil {
		t.Fatal(err)
	}
	seat, err := c.SeatByName("Alice")
	if err != nil {
		t.Fatalf("single match lookup: %v", err)
	}
	if seat.Number != 5 {
		t.Errorf("SeatByName(\"Alice\").Number = %d, want 5", seat.Number)
	}

	if err := c.BookSeat("Alice", 9); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SeatByName("Alice"); !errors.Is(err, ErrAmbiguousName) {
		t.Errorf("two-match lookup error = %v, want ErrAmbiguousName", err)
	}
}

func TestRemainingSeats(t *testing.T) {
	c := mustCarriage(t, "2+2", 2)
	if got := c.RemainingSeats(); got != 8 {
		t.Fatalf("RemainingSeats() = %d, want 8", got)
	}
	for _, n := range []int{1, 4, 8} {
		if err := c.BookSeat("x", n); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.RemainingSeats(); got != 5 {
		t.Errorf("RemainingSeats() = %d, want 5", got)
	}
}

// Scenario from the booking desk: a standard "2+2" intercity carriage.
func TestBookAliceSeatSix(t *testing.T) {
	c := mustCarriage(t, "2+2", 5)
	if c.TotalSeats() != 20 {
		t.Fatalf("TotalSeats() = %d, want 20", c.TotalSeats())
	}
	row, side, col, err := c.Position(6)
	if err != nil {
		t.Fatal(err)
	}
	if row != 1 || side != SideLeft || col != 1 {
		t.Errorf("seat 6 at (row %d, side %v, col %d), want (row 1, left, col 1)", row, side, col)
	}
	if err := c.BookSeat("Alice", 6); err != nil {
		t.Fatalf("booking seat 6: %v", err)
	}
	if err := c.BookSeat("Alice", 6); !errors.Is(err, ErrAlreadyBooked) {
		t.Errorf("second booking error = %v, want ErrAlreadyBooked", err)
	}
}
