package model

import (
	"fmt"
	"regexp"
)

// layoutPattern enforces the "L+R" seating layout form: exactly one digit,
// a plus sign, one digit. "2+2", "1+3" and "0+2" are valid; "15+15" is not.
var layoutPattern = regexp.MustCompile(`^\d\+\d$`)

// Side identifies which half of a carriage row a seat sits in.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Carriage owns a rectangular grid of seats split into a left and a right
// column group. Seats are stored as a single flat slice in seat-number
// order; row, side and column are derived arithmetically from the seat
// number rather than kept in parallel structures.
//
// Fields:
//  Number     – 1-based position within the owning train, 0 when standalone.
//  Layout     – the validated "L+R" layout string.
//  LeftSeats  – seats per row on the left side.
//  RightSeats – seats per row on the right side.
//  Rows       – number of rows; total seats = Rows * (LeftSeats+RightSeats).
type Carriage struct {
	Number     int
	Layout     string
	LeftSeats  int
	RightSeats int
	Rows       int

	seats []Seat // seat n lives at index n-1
}

// NewCarriage builds an empty carriage with the given layout and row count.
// number is the carriage's 1-based position in its train; pass 0 for a
// standalone carriage. Seats are numbered consecutively from 1, filling
// each row's left side then its right side before advancing to the next
// row. Returns ErrInvalidLayout when the layout string is malformed.
func NewCarriage(layout string, rows, number int) (*Carriage, error) {
	if !layoutPattern.MatchString(layout) {
		return nil, fmt.Errorf("%w: %q (want e.g. \"2+2\", \"1+3\")", ErrInvalidLayout, layout)
	}
	if rows < 1 {
		return nil, fmt.Errorf("%w: row count %d", ErrInvalidLayout, rows)
	}
	c := &Carriage{
		Number:     number,
		Layout:     layout,
		LeftSeats:  int(layout[0] - '0'),
		RightSeats: int(layout[2] - '0'),
		Rows:       rows,
	}
	c.seats = make([]Seat, rows*(c.LeftSeats+c.RightSeats))
	for i := range c.seats {
		c.seats[i].Number = i + 1
	}
	return c, nil
}

// TotalSeats returns the number of seats in the carriage.
func (c *Carriage) TotalSeats() int {
	return len(c.seats)
}

// SeatByNumber resolves a seat number to its seat. Returns
// ErrSeatOutOfRange when n < 1 or n exceeds the total seat count.
func (c *Carriage) SeatByNumber(n int) (*Seat, error) {
	if n < 1 || n > len(c.seats) {
		return nil, fmt.Errorf("%w: seat %d of %d", ErrSeatOutOfRange, n, len(c.seats))
	}
	return &c.seats[n-1], nil
}

// Position maps a seat number to its physical (row, side, column), all
// zero-based except side. The row is the seat number rounded up to the
// nearest full row; the index within the row decides left or right.
// Returns ErrSeatOutOfRange for invalid numbers.
func (c *Carriage) Position(n int) (row int, side Side, col int, err error) {
	if n < 1 || n > len(c.seats) {
		return 0, 0, 0, fmt.Errorf("%w: seat %d of %d", ErrSeatOutOfRange, n, len(c.seats))
	}
	rowWidth := c.LeftSeats + c.RightSeats
	// ceil(n / rowWidth), 1-based row
	r := (n + rowWidth - 1) / rowWidth
	indexInRow := n - rowWidth*(r-1)
	if indexInRow <= c.LeftSeats {
		return r - 1, SideLeft, indexInRow - 1, nil
	}
	return r - 1, SideRight, indexInRow - 1 - c.LeftSeats, nil
}

// SeatByName scans all seats for the given occupant name. Returns
// ErrPassengerNotFound on zero matches and ErrAmbiguousName when more than
// one seat is booked under the name.
func (c *Carriage) SeatByName(name string) (*Seat, error) {
	var match *Seat
	for i := range c.seats {
		if c.seats[i].Passenger != name {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousName, name)
		}
		match = &c.seats[i]
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrPassengerNotFound, name)
	}
	return match, nil
}

// BookSeat places a passenger in the given seat. Returns ErrSeatOutOfRange
// for an invalid number and ErrAlreadyBooked when the seat is occupied,
// regardless of who occupies it.
func (c *Carriage) BookSeat(name string, n int) error {
	seat, err := c.SeatByNumber(n)
	if err != nil {
		return err
	}
	if seat.IsBooked() {
		return fmt.Errorf("%w: seat %d", ErrAlreadyBooked, n)
	}
	seat.Passenger = name
	return nil
}

// UnbookSeat clears the given seat. Clearing an empty seat is a no-op;
// only an out-of-range number is an error.
func (c *Carriage) UnbookSeat(n int) error {
	seat, err := c.SeatByNumber(n)
	if err != nil {
		return err
	}
	seat.Unbook()
	return nil
}

// RemainingSeats returns the number of unoccupied seats. The allocator uses
// this as an all-or-nothing capacity precondition before searching.
func (c *Carriage) RemainingSeats() int {
	free := 0
	for i := range c.seats {
		if !c.seats[i].IsBooked() {
			free++
		}
	}
	return free
}

// SeatsInOrder returns a copy of all seats in seat-number order, for
// rendering, serialization and reporting. Mutations must go through
// BookSeat/UnbookSeat so the copy keeps callers from bypassing them.
func (c *Carriage) SeatsInOrder() []Seat {
	out := make([]Seat, len(c.seats))
	copy(out, c.seats)
	return out
}
