package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mlindqv/train-seat-booking/internal/model"
	"github.com/mlindqv/train-seat-booking/internal/repository"
	"github.com/mlindqv/train-seat-booking/internal/roster"
)

// TrainHandler exposes the roster: listing trains, inspecting their state,
// rendering seat maps and (for admins) creating and deleting trains. The
// live state lives in the roster; every successful mutation is written
// through to the train repository so a restart reloads the same roster.
type TrainHandler struct {
	Roster *roster.Roster
	Trains *repository.TrainRepo
}

// NewTrainHandler constructs a TrainHandler. Both dependencies must be
// non-nil.
func NewTrainHandler(r *roster.Roster, trains *repository.TrainRepo) *TrainHandler {
	if r == nil || trains == nil {
		panic("nil dependency passed to NewTrainHandler")
	}
	return &TrainHandler{Roster: r, Trains: trains}
}

// trainNumberParam parses the :number path parameter.
func trainNumberParam(c echo.Context) (int, error) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n < 1 {
		return 0, errors.New("invalid train number")
	}
	return n, nil
}

// List handles GET /v1/trains. Trains are returned in departure-ascending
// order, the same order the departure board shows them.
func (h *TrainHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"trains": h.Roster.Infos()})
}

// Get handles GET /v1/trains/:number and returns the train's full state
// including per-seat occupancy.
func (h *TrainHandler) Get(c echo.Context) error {
	number, err := trainNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train number"})
	}
	var st model.TrainState
	err = h.Roster.WithTrain(number, func(t *model.Train) error {
		st = t.State()
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	}
	return c.JSON(http.StatusOK, st)
}

// SeatMap handles GET /v1/trains/:number/seatmap and returns the
// fixed-width text rendering of the train. The response is plain text so
// terminals and the booking desk UI can display it verbatim.
func (h *TrainHandler) SeatMap(c echo.Context) error {
	number, err := trainNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train number"})
	}
	var text string
	err = h.Roster.WithTrain(number, func(t *model.Train) error {
		text = t.SeatMapText()
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	}
	return c.String(http.StatusOK, text)
}

// Create handles POST /v1/trains (ADMIN). The body is a TrainState; layout
// strings are re-validated by the model, so malformed input fails with 400
// rather than crashing later.
func (h *TrainHandler) Create(c echo.Context) error {
	var st model.TrainState
	if err := c.Bind(&st); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if st.Number < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "train number must be positive"})
	}
	train, err := model.TrainFromState(st)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Trains.Save(ctx, train.State()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save train failed"})
	}
	h.Roster.Put(train)
	return c.JSON(http.StatusCreated, train.Info())
}

// Delete handles DELETE /v1/trains/:number (ADMIN).
func (h *TrainHandler) Delete(c echo.Context) error {
	number, err := trainNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train number"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Trains.Delete(ctx, number); err != nil {
		if errors.Is(err, repository.ErrTrainNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete train failed"})
	}
	h.Roster.Remove(number)
	return c.NoContent(http.StatusNoContent)
}
