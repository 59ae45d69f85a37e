package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlindqv/train-seat-booking/internal/booking"
	"github.com/mlindqv/train-seat-booking/internal/model"
	"github.com/mlindqv/train-seat-booking/internal/roster"
)

// TicketHandler renders booked seats as printable ticket records. Two
// views exist: everything booked in the current session (the ledger) and
// everything currently occupied on one train regardless of when it was
// booked.
type TicketHandler struct {
	Roster *roster.Roster
	Ledger *booking.Ledger
}

func NewTicketHandler(r *roster.Roster, ledger *booking.Ledger) *TicketHandler {
	if r == nil || ledger == nil {
		panic("nil dependency passed to NewTicketHandler")
	}
	return &TicketHandler{Roster: r, Ledger: ledger}
}

// SessionTickets handles GET /v1/tickets: one ticket per ledger entry, in
// booking order.
func (h *TicketHandler) SessionTickets(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"tickets": booking.TicketsFromLedger(h.Ledger)})
}

// TrainTickets handles GET /v1/trains/:number/tickets: one ticket per
// currently booked seat on the train.
func (h *TicketHandler) TrainTickets(c echo.Context) error {
	number, err := trainNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train number"})
	}
	var tickets []booking.Ticket
	err = h.Roster.WithTrain(number, func(t *model.Train) error {
		tickets = booking.TicketsFromTrain(t)
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": tickets})
}
