package repository // repository defines data access for persisted trains

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mlindqv/train-seat-booking/internal/model"
)

// TrainRepo persists train state: one row per train, one row per carriage,
// and one row per occupied seat. Free seats are implied by the carriage
// layout, so loading a train rebuilds exactly the occupancy that was saved.
type TrainRepo struct {
	db *sql.DB
}

// NewTrainRepo constructs a TrainRepo with the given DB handle.
func NewTrainRepo(db *sql.DB) *TrainRepo {
	return &TrainRepo{db: db}
}

// DB exposes the underlying handle so callers can share transactions.
func (r *TrainRepo) DB() *sql.DB {
	return r.db
}

// EnsureSchema creates the roster tables when they do not exist yet. Clerk
// account tables are owned by UserRepo.EnsureSchema; this method only covers
// what the roster needs.
func (r *TrainRepo) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trains (
			number      INT PRIMARY KEY,
			departure   DATETIME NOT NULL,
			arrival     DATETIME NOT NULL,
			origin      VARCHAR(120) NOT NULL,
			destination VARCHAR(120) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS carriages (
			train_number INT NOT NULL,
			position     INT NOT NULL,
			layout       CHAR(3) NOT NULL,
			row_count    INT NOT NULL,
			PRIMARY KEY (train_number, position),
			FOREIGN KEY (train_number) REFERENCES trains(number) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS seat_occupants (
			train_number      INT NOT NULL,
			carriage_position INT NOT NULL,
			seat_number       INT NOT NULL,
			passenger         VARCHAR(120) NOT NULL,
			PRIMARY KEY (train_number, carriage_position, seat_number),
			FOREIGN KEY (train_number) REFERENCES trains(number) ON DELETE CASCADE
		)`,
	}
	for _, q := range stmts {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// Save stores a train's full state, replacing whatever was stored under the
// same number. All writes happen in one transaction so a crash can never
// leave a train half-saved.
func (r *TrainRepo) Save(ctx context.Context, st model.TrainState) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Cascade clears carriages and occupants of a previous save.
	if _, err := tx.ExecContext(ctx, `DELETE FROM trains WHERE number = ?`, st.Number); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO trains (number, departure, arrival, origin, destination) VALUES (?, ?, ?, ?, ?)`,
		st.Number, st.Departure.UTC(), st.Arrival.UTC(), st.Origin, st.Destination); err != nil {
		return err
	}

	if len(st.Carriages) > 0 {
		query := `INSERT INTO carriages (train_number, position, layout, row_count) VALUES `
		args := make([]interface{}, 0, len(st.Carriages)*4)
		for i, cs := range st.Carriages {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, st.Number, i+1, cs.Layout, cs.Rows)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	query := `INSERT INTO seat_occupants (train_number, carriage_position, seat_number, passenger) VALUES `
	args := make([]interface{}, 0)
	for i, cs := range st.Carriages {
		for j, passenger := range cs.Occupants {
			if passenger == "" {
				continue
			}
			if len(args) > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, st.Number, i+1, j+1, passenger)
		}
	}
	if len(args) > 0 {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Load rebuilds the stored state of one train. Returns ErrTrainNotFound
// when the number has no row.
func (r *TrainRepo) Load(ctx context.Context, number int) (model.TrainState, error) {
	var st model.TrainState
	var departure, arrival time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT number, departure, arrival, origin, destination FROM trains WHERE number = ?`,
		number).Scan(&st.Number, &departure, &arrival, &st.Origin, &st.Destination)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TrainState{}, ErrTrainNotFound
		}
		return model.TrainState{}, err
	}
	st.Departure = departure.UTC()
	st.Arrival = arrival.UTC()

	rows, err := r.db.QueryContext(ctx,
		`SELECT position, layout, row_count FROM carriages WHERE train_number = ? ORDER BY position`,
		number)
	if err != nil {
		return model.TrainState{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var pos, rowCount int
		var layout string
		if err := rows.Scan(&pos, &layout, &rowCount); err != nil {
			return model.TrainState{}, err
		}
		left := int(layout[0] - '0')
		right := int(layout[2] - '0')
		st.Carriages = append(st.Carriages, model.CarriageState{
			Layout:    layout,
			Rows:      rowCount,
			Occupants: make([]string, rowCount*(left+right)),
		})
	}
	if err := rows.Err(); err != nil {
		return model.TrainState{}, err
	}

	seatRows, err := r.db.QueryContext(ctx,
		`SELECT carriage_position, seat_number, passenger FROM seat_occupants WHERE train_number = ?`,
		number)
	if err != nil {
		return model.TrainState{}, err
	}
	defer seatRows.Close()
	for seatRows.Next() {
		var pos, seat int
		var passenger string
		if err := seatRows.Scan(&pos, &seat, &passenger); err != nil {
			return model.TrainState{}, err
		}
		if pos < 1 || pos > len(st.Carriages) {
			continue // orphaned row, skip rather than fail the whole load
		}
		occ := st.Carriages[pos-1].Occupants
		if seat < 1 || seat > len(occ) {
			continue
		}
		occ[seat-1] = passenger
	}
	if err := seatRows.Err(); err != nil {
		return model.TrainState{}, err
	}
	return st, nil
}

// LoadAll loads every stored train ordered by departure.
func (r *TrainRepo) LoadAll(ctx context.Context) ([]model.TrainState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT number FROM trains ORDER BY departure, number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	states := make([]model.TrainState, 0, len(numbers))
	for _, n := range numbers {
		st, err := r.Load(ctx, n)
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	return states, nil
}

// Delete removes a stored train and, via cascade, its carriages and
// occupants. Deleting an absent train returns ErrTrainNotFound.
func (r *TrainRepo) Delete(ctx context.Context, number int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trains WHERE number = ?`, number)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTrainNotFound
	}
	return nil
}
