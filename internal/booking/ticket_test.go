package booking

import (
	"testing"
	"time"
)

func TestTicketText(t *testing.T) {
	dep := time.Date(2026, 5, 22, 15, 32, 0, 0, time.UTC)
	tk := Ticket{
		Passenger:      "Alice",
		SeatNumber:     14,
		CarriageNumber: 2,
		TrainNumber:    152,
		Departure:      dep,
		Origin:         "Stockholm C",
		Destination:    "Göteborg C",
	}
	want := "Train 152 Stockholm C-Göteborg C dep 2026-05-22 15:32 | car 2 seat 14 | Alice"
	if got := tk.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTicketsFromTrain(t *testing.T) {
	tr := allocTrain(t, "2+2", 2)
	if err := tr.BookPassenger(1, 5, "Bob"); err != nil {
		t.Fatal(err)
	}
	if err := tr.BookPassenger(1, 2, "Alice"); err != nil {
		t.Fatal(err)
	}

	tickets := TicketsFromTrain(tr)
	if len(tickets) != 2 {
		t.Fatalf("len(tickets) = %d, want 2", len(tickets))
	}
	// Seat-number order, independent of booking order.
	if tickets[0].Passenger != "Alice" || tickets[0].SeatNumber != 2 {
		t.Errorf("tickets[0] = %s seat %d, want Alice seat 2", tickets[0].Passenger, tickets[0].SeatNumber)
	}
	if tickets[1].Passenger != "Bob" || tickets[1].SeatNumber != 5 {
		t.Errorf("tickets[1] = %s seat %d, want Bob seat 5", tickets[1].Passenger, tickets[1].SeatNumber)
	}
}

func TestTicketsFromLedgerOrder(t *testing.T) {
	tr := allocTrain(t, "2+2", 2)
	ledger := NewLedger()
	a := NewAllocator(ledger)

	if _, err := a.AttemptContiguous(tr, 1, 4, []string{"Cleo", "Dan"}); err != nil {
		t.Fatal(err)
	}
	tickets := TicketsFromLedger(ledger)
	if len(tickets) != 2 {
		t.Fatalf("len(tickets) = %d, want 2", len(tickets))
	}
	if tickets[0].Passenger != "Cleo" || tickets[1].Passenger != "Dan" {
		t.Errorf("ticket order = [%s %s], want [Cleo Dan]", tickets[0].Passenger, tickets[1].Passenger)
	}
	if tickets[0].TrainNumber != 88 || tickets[0].Origin != "Malmö" {
		t.Errorf("ticket carries train %d origin %q, want 88 Malmö", tickets[0].TrainNumber, tickets[0].Origin)
	}
}
