package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mlindqv/train-seat-booking/internal/booking"
	"github.com/mlindqv/train-seat-booking/internal/model"
	q "github.com/mlindqv/train-seat-booking/internal/queue"
	"github.com/mlindqv/train-seat-booking/internal/repository"
	"github.com/mlindqv/train-seat-booking/internal/roster"
	queuepublisher "github.com/mlindqv/train-seat-booking/internal/service"
)

// BookingHandler performs group bookings and unbookings against the live
// roster. Each request runs the whole allocator transaction under the
// roster lock, then writes the train state through to MySQL and publishes
// a booking event. Publish and persist failures are logged, never fatal to
// the request: the in-memory booking already succeeded.
type BookingHandler struct {
	Roster    *roster.Roster
	Trains    *repository.TrainRepo
	Ledger    *booking.Ledger
	Allocator *booking.Allocator
}

// NewBookingHandler constructs a BookingHandler. All dependencies must be
// non-nil.
func NewBookingHandler(r *roster.Roster, trains *repository.TrainRepo, ledger *booking.Ledger, alloc *booking.Allocator) *BookingHandler {
	if r == nil || trains == nil || ledger == nil || alloc == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Roster: r, Trains: trains, Ledger: ledger, Allocator: alloc}
}

type bookReq struct {
	CarriageNumber int      `json:"carriage_number"`
	StartSeat      int      `json:"start_seat"`
	Passengers     []string `json:"passengers"`
	// AllowScatter resolves the contiguity-break question up front: when
	// adjacent seats run out mid-group, true continues with scattered
	// seats and false keeps only the already-booked prefix.
	AllowScatter bool `json:"allow_scatter"`
}

type bookedSeat struct {
	Passenger  string `json:"passenger"`
	SeatNumber int    `json:"seat_number"`
}

type bookResp struct {
	Outcome   string       `json:"outcome"`
	GroupRef  string       `json:"group_ref,omitempty"`
	Booked    []bookedSeat `json:"booked"`
	Remaining []string     `json:"remaining,omitempty"`
}

type unbookReq struct {
	CarriageNumber int    `json:"carriage_number"`
	SeatNumber     int    `json:"seat_number,omitempty"`
	Passenger      string `json:"passenger,omitempty"`
}

// Book handles POST /v1/trains/:number/bookings.
func (h *BookingHandler) Book(c echo.Context) error {
	number, err := trainNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train number"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	names := make([]string, 0, len(req.Passengers))
	for _, n := range req.Passengers {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passengers required"})
	}

	var res booking.Result
	var state model.TrainState
	err = h.Roster.WithTrain(number, func(t *model.Train) error {
		var err error
		res, err = h.Allocator.AttemptContiguous(t, req.CarriageNumber, req.StartSeat, names)
		if err != nil {
			return err
		}
		if res.Outcome == booking.OutcomeContiguityBreak {
			if req.AllowScatter {
				res, err = h.Allocator.ContinueScatter(res)
			} else {
				res, err = h.Allocator.Decline(res)
			}
			if err != nil {
				return err
			}
		}
		state = t.State()
		return nil
	})
	if err != nil {
		return bookingError(c, err)
	}

	h.persist(c.Request().Context(), state)
	if len(res.Booked) > 0 {
		_ = queuepublisher.PublishBookingRecorded(c.Request().Context(), bookingRecordedEvent(number, req.CarriageNumber, res))
	}

	resp := bookResp{
		Outcome:   string(res.Outcome),
		GroupRef:  res.GroupRef.String(),
		Booked:    make([]bookedSeat, len(res.Booked)),
		Remaining: res.Remaining,
	}
	for i, b := range res.Booked {
		resp.Booked[i] = bookedSeat{Passenger: b.Passenger, SeatNumber: b.SeatNumber}
	}
	status := http.StatusCreated
	if res.Outcome == booking.OutcomePartialAdjacent || res.Outcome == booking.OutcomeScatterExhausted {
		// Partial success: some passengers remain unseated and the caller
		// must tell the traveller which ones.
		status = http.StatusAccepted
	}
	return c.JSON(status, resp)
}

// Unbook handles DELETE /v1/trains/:number/bookings. The seat is named
// either directly by number or via the passenger name booked on it.
func (h *BookingHandler) Unbook(c echo.Context) error {
	number, err := trainNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train number"})
	}
	var req unbookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Passenger = strings.TrimSpace(req.Passenger)
	if req.SeatNumber == 0 && req.Passenger == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_number or passenger required"})
	}

	var state model.TrainState
	var freedSeat int
	err = h.Roster.WithTrain(number, func(t *model.Train) error {
		car, err := t.Carriage(req.CarriageNumber)
		if err != nil {
			return err
		}
		seatNum := req.SeatNumber
		if seatNum == 0 {
			seat, err := car.SeatByName(req.Passenger)
			if err != nil {
				return err
			}
			seatNum = seat.Number
		} else if _, err := car.SeatByNumber(seatNum); err != nil {
			return err
		}

		// The ledger entry goes first: a duplicate entry is an integrity
		// violation and must abort before the seat is touched.
		if _, err := h.Ledger.Remove(number, req.CarriageNumber, seatNum); err != nil {
			if errors.Is(err, booking.ErrDuplicateBooking) {
				return err
			}
			// Absent entries are expected for seats booked before this
			// session; the unbooking itself still proceeds.
			log.Printf("unbook: no ledger entry for train %d car %d seat %d", number, req.CarriageNumber, seatNum)
		}
		if err := car.UnbookSeat(seatNum); err != nil {
			return err
		}
		freedSeat = seatNum
		state = t.State()
		return nil
	})
	if err != nil {
		return bookingError(c, err)
	}

	h.persist(c.Request().Context(), state)
	_ = queuepublisher.PublishBookingCancelled(c.Request().Context(), q.BookingCancelledEvent{
		TrainNumber:    number,
		CarriageNumber: req.CarriageNumber,
		SeatNumber:     freedSeat,
		CancelledAt:    time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"freed_seat": freedSeat})
}

// persist writes the mutated train state through to MySQL. Failures are
// logged only; the booking already happened in memory and must not be
// reported as failed.
func (h *BookingHandler) persist(ctx context.Context, st model.TrainState) {
	saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := h.Trains.Save(saveCtx, st); err != nil {
		log.Printf("persist train %d failed: %v", st.Number, err)
	}
}

// bookingError maps core errors to HTTP responses. Everything the core
// returns is a normal, recoverable outcome; nothing here is a crash.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, roster.ErrTrainNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	case errors.Is(err, model.ErrCarriageOutOfRange),
		errors.Is(err, model.ErrSeatOutOfRange),
		errors.Is(err, booking.ErrNoPassengers):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrInsufficientCapacity),
		errors.Is(err, booking.ErrSeatConflict),
		errors.Is(err, model.ErrAlreadyBooked),
		errors.Is(err, model.ErrAmbiguousName):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrPassengerNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrDuplicateBooking):
		// Ledger integrity violation: a seat was double-recorded, which
		// points at a bug rather than bad user input.
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
}

// bookingRecordedEvent flattens an allocator result into the queue payload.
func bookingRecordedEvent(trainNumber, carriageNumber int, res booking.Result) q.BookingRecordedEvent {
	seats := make([]q.BookedSeat, len(res.Booked))
	for i, b := range res.Booked {
		seats[i] = q.BookedSeat{Passenger: b.Passenger, SeatNumber: b.SeatNumber}
	}
	train := res.Booked[0].Train
	return q.BookingRecordedEvent{
		GroupRef:       res.GroupRef.String(),
		Outcome:        string(res.Outcome),
		TrainNumber:    trainNumber,
		CarriageNumber: carriageNumber,
		Departure:      train.Departure.Format(time.RFC3339),
		Origin:         train.Origin,
		Destination:    train.Destination,
		Seats:          seats,
		Remaining:      res.Remaining,
		RecordedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}
