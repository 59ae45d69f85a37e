// Package queue defines message payloads exchanged over the message broker.
package queue

// BookedSeat is one passenger/seat pair within a recorded booking group.
type BookedSeat struct {
	Passenger  string `json:"passenger"`
	SeatNumber int    `json:"seat_number"`
}

// BookingRecordedEvent is published after an allocator run seated at least
// one passenger. It carries enough information for downstream consumers to
// print tickets or feed analytics without querying the service.
type BookingRecordedEvent struct {
	GroupRef       string       `json:"group_ref"`
	Outcome        string       `json:"outcome"`
	TrainNumber    int          `json:"train_number"`
	CarriageNumber int          `json:"carriage_number"`
	Departure      string       `json:"departure"`
	Origin         string       `json:"origin"`
	Destination    string       `json:"destination"`
	Seats          []BookedSeat `json:"seats"`
	Remaining      []string     `json:"remaining,omitempty"`
	RecordedAt     string       `json:"recorded_at"`
}

// BookingCancelledEvent is published when a seat is unbooked.
type BookingCancelledEvent struct {
	TrainNumber    int    `json:"train_number"`
	CarriageNumber int    `json:"carriage_number"`
	SeatNumber     int    `json:"seat_number"`
	CancelledAt    string `json:"cancelled_at"`
}
