package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type QualityCheck struct {
	ID               int64     `json:"id"`
	OrderID          int64     `json:"order_id"`
	Parameter        string    `json:"parameter"`
	Value            float64   `json:"value"`
	SpecificationMin float64   `json:"specification_min"`
	SpecificationMax float64   `json:"specification_max"`
	Passed           bool      `json:"passed"`
	CheckedAt        time.Time `json:"checked_at"`
}

// Within reports whether value lies in the closed interval [lo, hi].
func Within(value, lo, hi float64) bool {
	return lo <= value && value <= hi
}

// Evaluate applies the pass/fail rule to the check's current measurement.
func (c QualityCheck) Evaluate() bool {
	return Within(c.Value, c.SpecificationMin, c.SpecificationMax)
}

const qualityCheckSelectCols = `id, order_id, parameter, value, specification_min, specification_max, passed, checked_at`

func scanQualityCheck(row interface{ Scan(...any) error }) (*QualityCheck, error) {
	var c QualityCheck
	var checkedAt any
	err := row.Scan(&c.ID, &c.OrderID, &c.Parameter, &c.Value,
		&c.SpecificationMin, &c.SpecificationMax, &c.Passed, &checkedAt)
	if err != nil {
		return nil, err
	}
	c.CheckedAt = parseTime(checkedAt)
	return &c, nil
}

func scanQualityChecks(rows *sql.Rows) ([]*QualityCheck, error) {
	checks := []*QualityCheck{}
	for rows.Next() {
		c, err := scanQualityCheck(rows)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// CreateQualityCheck inserts c. Passed is always derived from the measurement;
// whatever the caller put there is overwritten.
func (db *DB) CreateQualityCheck(ctx context.Context, c *QualityCheck) error {
	c.Passed = c.Evaluate()
	c.CheckedAt = stamp(time.Now())

	err := db.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, db.Q(`INSERT INTO quality_checks (order_id, parameter, value, specification_min, specification_max, passed, checked_at) VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`),
			c.OrderID, c.Parameter, c.Value, c.SpecificationMin, c.SpecificationMax,
			c.Passed, db.dialect.BindTime(c.CheckedAt)).Scan(&c.ID)
	})
	return db.classify("create quality check", err)
}

func (db *DB) ListQualityChecks(ctx context.Context) ([]*QualityCheck, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM quality_checks ORDER BY id`, qualityCheckSelectCols))
	if err != nil {
		return nil, db.classify("list quality checks", err)
	}
	defer rows.Close()
	checks, err := scanQualityChecks(rows)
	return checks, db.classify("list quality checks", err)
}

func (db *DB) GetQualityCheck(ctx context.Context, id int64) (*QualityCheck, error) {
	row := db.QueryRowContext(ctx, db.Q(fmt.Sprintf(`SELECT %s FROM quality_checks WHERE id=?`, qualityCheckSelectCols)), id)
	c, err := scanQualityCheck(row)
	if err != nil {
		return nil, db.classify(fmt.Sprintf("get quality check %d", id), err)
	}
	return c, nil
}

// UpdateQualityCheck merges p into the stored check (see QualityCheckPatch.Apply
// for when passed is recomputed) and persists the result in one transaction.
func (db *DB) UpdateQualityCheck(ctx context.Context, id int64, p QualityCheckPatch) (*QualityCheck, error) {
	var updated QualityCheck
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, db.lockRowQuery(qualityCheckSelectCols, "quality_checks"), id)
		cur, err := scanQualityCheck(row)
		if err != nil {
			return err
		}
		updated = p.Apply(*cur)
		_, err = tx.ExecContext(ctx, db.Q(`UPDATE quality_checks SET order_id=?, parameter=?, value=?, specification_min=?, specification_max=?, passed=? WHERE id=?`),
			updated.OrderID, updated.Parameter, updated.Value,
			updated.SpecificationMin, updated.SpecificationMax, updated.Passed, id)
		return err
	})
	if err != nil {
		return nil, db.classify(fmt.Sprintf("update quality check %d", id), err)
	}
	return &updated, nil
}

func (db *DB) DeleteQualityCheck(ctx context.Context, id int64) error {
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		return deleteByID(ctx, tx, db.Q(`DELETE FROM quality_checks WHERE id=?`), id)
	})
	return db.classify(fmt.Sprintf("delete quality check %d", id), err)
}
