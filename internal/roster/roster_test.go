package roster

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

func newTrain(t *testing.T, number int, dep time.Time) *model.Train {
	t.Helper()
	car, err := model.NewCarriage("2+2", 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	return model.NewTrain(number, dep, dep.Add(time.Hour), "Umeå", "Sundsvall", []*model.Carriage{car})
}

func TestWithTrainMissing(t *testing.T) {
	r := New()
	err := r.WithTrain(99, func(*model.Train) error { return nil })
	if !errors.Is(err, ErrTrainNotFound) {
		t.Errorf("WithTrain on empty roster error = %v, want ErrTrainNotFound", err)
	}
}

func TestPutReplaceRemove(t *testing.T) {
	r := New()
	dep := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	r.Put(newTrain(t, 10, dep))
	r.Put(newTrain(t, 10, dep.Add(time.Hour))) // same number replaces

	var got time.Time
	if err := r.WithTrain(10, func(tr *model.Train) error {
		got = tr.Departure
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(dep.Add(time.Hour)) {
		t.Error("Put did not replace the existing train")
	}

	r.Remove(10)
	if err := r.WithTrain(10, func(*model.Train) error { return nil }); !errors.Is(err, ErrTrainNotFound) {
		t.Errorf("after Remove error = %v, want ErrTrainNotFound", err)
	}
	r.Remove(10) // removing again is a no-op
}

func TestInfosSortedByDeparture(t *testing.T) {
	r := New()
	base := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	r.Put(newTrain(t, 3, base.Add(2*time.Hour)))
	r.Put(newTrain(t, 1, base))
	r.Put(newTrain(t, 2, base.Add(time.Hour)))

	infos := r.Infos()
	if len(infos) != 3 {
		t.Fatalf("len(Infos()) = %d, want 3", len(infos))
	}
	for i, want := range []int{1, 2, 3} {
		if infos[i].Number != want {
			t.Errorf("infos[%d].Number = %d, want %d", i, infos[i].Number, want)
		}
	}
}

// Two goroutines booking through WithTrain must never both pass the
// capacity precondition when only one group fits.
func TestWithTrainSerializesBookings(t *testing.T) {
	r := New()
	r.Put(newTrain(t, 5, time.Now()))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			errs[g] = r.WithTrain(5, func(tr *model.Train) error {
				car, err := tr.Carriage(1)
				if err != nil {
					return err
				}
				if car.RemainingSeats() < 8 {
					return errors.New("capacity")
				}
				for n := 1; n <= 8; n++ {
					if err := car.BookSeat("g", n); err != nil {
						return err
					}
				}
				return nil
			})
		}(g)
	}
	wg.Wait()

	if (errs[0] == nil) == (errs[1] == nil) {
		t.Errorf("want exactly one winner, got errs %v / %v", errs[0], errs[1])
	}
}
