package booking

import (
	"fmt"
	"time"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

// Ticket is the render-ready record for one booked seat. The reporting
// layer decides the final output format; Text gives the canonical one-line
// form used by the ticket log.
type Ticket struct {
	Passenger      string    `json:"passenger"`
	SeatNumber     int       `json:"seat_number"`
	CarriageNumber int       `json:"carriage_number"`
	TrainNumber    int       `json:"train_number"`
	Departure      time.Time `json:"departure"`
	Arrival        time.Time `json:"arrival"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
}

// TicketFromBooking builds a ticket from a ledger entry.
func TicketFromBooking(b Booking) Ticket {
	return Ticket{
		Passenger:      b.Passenger,
		SeatNumber:     b.SeatNumber,
		CarriageNumber: b.CarriageNumber,
		TrainNumber:    b.Train.Number,
		Departure:      b.Train.Departure,
		Arrival:        b.Train.Arrival,
		Origin:         b.Train.Origin,
		Destination:    b.Train.Destination,
	}
}

// TicketsFromLedger renders every booking in the ledger, in append order.
func TicketsFromLedger(l *Ledger) []Ticket {
	entries := l.Entries()
	tickets := make([]Ticket, len(entries))
	for i, e := range entries {
		tickets[i] = TicketFromBooking(e)
	}
	return tickets
}

// TicketsFromTrain renders one ticket per currently booked seat on the
// train, independent of the ledger. This covers seats whose bookings
// predate the current session.
func TicketsFromTrain(t *model.Train) []Ticket {
	var tickets []Ticket
	info := t.Info()
	for _, car := range t.Carriages {
		for _, seat := range car.SeatsInOrder() {
			if !seat.IsBooked() {
				continue
			}
			tickets = append(tickets, Ticket{
				Passenger:      seat.Passenger,
				SeatNumber:     seat.Number,
				CarriageNumber: car.Number,
				TrainNumber:    info.Number,
				Departure:      info.Departure,
				Arrival:        info.Arrival,
				Origin:         info.Origin,
				Destination:    info.Destination,
			})
		}
	}
	return tickets
}

// Text renders the ticket as a single line, e.g.
// "Train 152 Stockholm C-Göteborg C dep 2024-05-22 15:32 | car 2 seat 14 | Alice".
func (t Ticket) Text() string {
	return fmt.Sprintf("Train %d %s-%s dep %s | car %d seat %d | %s",
		t.TrainNumber, t.Origin, t.Destination,
		t.Departure.Format("2006-01-02 15:04"),
		t.CarriageNumber, t.SeatNumber, t.Passenger)
}
