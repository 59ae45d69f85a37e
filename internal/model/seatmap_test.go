package model

import (
	"strings"
	"testing"
	"time"
)

type carDef struct {
	layout string
	rows   int
}

func seatMapTrain(t *testing.T, defs ...carDef) *Train {
	t.Helper()
	cars := make([]*Carriage, len(defs))
	for i, s := range defs {
		car, err := NewCarriage(s.layout, s.rows, 0)
		if err != nil {
			t.Fatal(err)
		}
		cars[i] = car
	}
	dep := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	return NewTrain(1, dep, dep.Add(time.Hour), "Uppsala", "Stockholm", cars)
}

// The seat map is part of the clerk-facing contract: identical seat state
// must render byte-identical output.
func TestSeatMapSnapshot(t *testing.T) {
	tr := seatMapTrain(t, carDef{"1+1", 2})
	if err := tr.BookPassenger(1, 2, "Alice"); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		" Car 1 ",
		"-------",
		"| 1 3 |",
		"|     |",
		"| * 4 |",
		"-------",
	}, "\n") + "\n"

	if got := tr.SeatMapText(); got != want {
		t.Errorf("seat map mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// Blocks of different heights are joined side by side, shorter blocks padded
// with spaces.
func TestSeatMapMultipleCarriages(t *testing.T) {
	tr := seatMapTrain(t, carDef{"1+1", 2}, carDef{"2+1", 2})

	want := strings.Join([]string{
		" Car 1    Car 2 ",
		"-------  -------",
		"| 1 3 |  | 1 4 |",
		"|     |  | 2 5 |",
		"| 2 4 |  |     |",
		"-------  | 3 6 |",
		"         -------",
	}, "\n") + "\n"

	if got := tr.SeatMapText(); got != want {
		t.Errorf("seat map mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// Carriages with more than 9 seats pad every cell to the widest seat number
// so columns stay aligned, and the booked mask matches the cell width.
func TestSeatMapWideSeatNumbers(t *testing.T) {
	tr := seatMapTrain(t, carDef{"2+2", 3}) // 12 seats, two-digit cells
	if err := tr.BookPassenger(1, 11, "Bob"); err != nil {
		t.Fatal(err)
	}

	out := tr.SeatMapText()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d width %d differs from %d", i, len(line), len(lines[0]))
		}
	}
	if !strings.Contains(out, "**") {
		t.Error("booked seat not masked with cell-width asterisks")
	}
	if strings.Contains(out, "11") {
		t.Error("booked seat 11 still shows its number")
	}
}
