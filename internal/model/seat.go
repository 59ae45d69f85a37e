package model

// Seat is the atomic unit of inventory: a number that is fixed at
// construction and the name of the passenger occupying it. An empty
// passenger name means the seat is free.
//
// Fields:
//  Number    – seat number, unique within its carriage, assigned in
//              row-major, left-then-right order starting at 1.
//  Passenger – occupant name; empty when unbooked.
type Seat struct {
	Number    int    `json:"number"`
	Passenger string `json:"passenger,omitempty"`
}

// IsBooked reports whether a passenger occupies the seat.
func (s *Seat) IsBooked() bool {
	return s.Passenger != ""
}

// Unbook clears the occupant. Unbooking an already-empty seat is a no-op,
// never an error.
func (s *Seat) Unbook() {
	s.Passenger = ""
}
