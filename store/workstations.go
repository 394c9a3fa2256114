package store

import (
	"context"
	"database/sql"
	"fmt"
)

const DefaultStationStatus = "idle"

type WorkStation struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	CurrentOrderID *int64 `json:"current_order_id"`
}

const workStationSelectCols = `id, name, location, status, current_order_id`

func scanWorkStation(row interface{ Scan(...any) error }) (*WorkStation, error) {
	var s WorkStation
	var orderID sql.NullInt64
	err := row.Scan(&s.ID, &s.Name, &s.Location, &s.Status, &orderID)
	if err != nil {
		return nil, err
	}
	if orderID.Valid {
		s.CurrentOrderID = &orderID.Int64
	}
	return &s, nil
}

func scanWorkStations(rows *sql.Rows) ([]*WorkStation, error) {
	stations := []*WorkStation{}
	for rows.Next() {
		s, err := scanWorkStation(rows)
		if err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

// nullableID converts an optional reference to a driver value.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// CreateWorkStation inserts s. current_order_id is stored verbatim; it is not
// checked against production_orders.
func (db *DB) CreateWorkStation(ctx context.Context, s *WorkStation) error {
	if s.Status == "" {
		s.Status = DefaultStationStatus
	}
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, db.Q(`INSERT INTO workstations (name, location, status, current_order_id) VALUES (?, ?, ?, ?) RETURNING id`),
			s.Name, s.Location, s.Status, nullableID(s.CurrentOrderID)).Scan(&s.ID)
	})
	return db.classify("create workstation", err)
}

func (db *DB) ListWorkStations(ctx context.Context) ([]*WorkStation, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM workstations ORDER BY id`, workStationSelectCols))
	if err != nil {
		return nil, db.classify("list workstations", err)
	}
	defer rows.Close()
	stations, err := scanWorkStations(rows)
	return stations, db.classify("list workstations", err)
}

func (db *DB) GetWorkStation(ctx context.Context, id int64) (*WorkStation, error) {
	row := db.QueryRowContext(ctx, db.Q(fmt.Sprintf(`SELECT %s FROM workstations WHERE id=?`, workStationSelectCols)), id)
	s, err := scanWorkStation(row)
	if err != nil {
		return nil, db.classify(fmt.Sprintf("get workstation %d", id), err)
	}
	return s, nil
}

func (db *DB) UpdateWorkStation(ctx context.Context, id int64, p WorkStationPatch) (*WorkStation, error) {
	var updated WorkStation
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, db.lockRowQuery(workStationSelectCols, "workstations"), id)
		cur, err := scanWorkStation(row)
		if err != nil {
			return err
		}
		updated = p.Apply(*cur)
		_, err = tx.ExecContext(ctx, db.Q(`UPDATE workstations SET name=?, location=?, status=?, current_order_id=? WHERE id=?`),
			updated.Name, updated.Location, updated.Status, nullableID(updated.CurrentOrderID), id)
		return err
	})
	if err != nil {
		return nil, db.classify(fmt.Sprintf("update workstation %d", id), err)
	}
	return &updated, nil
}

func (db *DB) DeleteWorkStation(ctx context.Context, id int64) error {
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		return deleteByID(ctx, tx, db.Q(`DELETE FROM workstations WHERE id=?`), id)
	})
	return db.classify(fmt.Sprintf("delete workstation %d", id), err)
}
