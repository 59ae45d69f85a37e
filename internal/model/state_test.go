package model

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStateRoundTrip(t *testing.T) {
	tr := testTrain(t, 152, time.Date(2026, 5, 22, 15, 32, 0, 0, time.UTC))
	if err := tr.BookPassenger(1, 3, "Alice"); err != nil {
		t.Fatal(err)
	}
	if err := tr.BookPassenger(2, 7, "Bob"); err != nil {
		t.Fatal(err)
	}

	st := tr.State()
	restored, err := TrainFromState(st)
	if err != nil {
		t.Fatalf("TrainFromState: %v", err)
	}
	if !reflect.DeepEqual(restored.State(), st) {
		t.Error("restored state differs from snapshot")
	}

	seat, err := restored.Carriages[0].SeatByNumber(3)
	if err != nil {
		t.Fatal(err)
	}
	if seat.Passenger != "Alice" {
		t.Errorf("seat 3 occupant = %q, want Alice", seat.Passenger)
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	tr := testTrain(t, 9, time.Date(2026, 5, 22, 15, 32, 0, 0, time.UTC))
	if err := tr.BookPassenger(1, 1, "Cleo"); err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(tr.State())
	if err != nil {
		t.Fatal(err)
	}
	var st TrainState
	if err := json.Unmarshal(raw, &st); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(st, tr.State()) {
		t.Error("state changed across JSON round trip")
	}
}

func TestTrainFromStateValidates(t *testing.T) {
	st := TrainState{
		Number: 1,
		Carriages: []CarriageState{
			{Layout: "9+9", Rows: 1, Occupants: make([]string, 18)},
		},
	}
	if _, err := TrainFromState(st); err != nil {
		t.Errorf("valid state rejected: %v", err)
	}

	st.Carriages[0].Layout = "10+1"
	if _, err := TrainFromState(st); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("bad layout error = %v, want ErrInvalidLayout", err)
	}

	st.Carriages[0].Layout = "2+2"
	st.Carriages[0].Rows = 2
	// 18 occupants for 8 seats
	if _, err := TrainFromState(st); err == nil {
		t.Error("occupant count mismatch accepted")
	}
}
