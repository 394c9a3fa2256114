package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const DefaultOrderStatus = "pending"

type ProductionOrder struct {
	ID          int64     `json:"id"`
	OrderNumber string    `json:"order_number"`
	ProductCode string    `json:"product_code"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	DueDate     time.Time `json:"due_date"`
}

const productionOrderSelectCols = `id, order_number, product_code, quantity, status, created_at, due_date`

func scanProductionOrder(row interface{ Scan(...any) error }) (*ProductionOrder, error) {
	var o ProductionOrder
	var createdAt, dueDate any
	err := row.Scan(&o.ID, &o.OrderNumber, &o.ProductCode, &o.Quantity, &o.Status, &createdAt, &dueDate)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = parseTime(createdAt)
	o.DueDate = parseTime(dueDate)
	return &o, nil
}

func scanProductionOrders(rows *sql.Rows) ([]*ProductionOrder, error) {
	orders := []*ProductionOrder{}
	for rows.Next() {
		o, err := scanProductionOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CreateProductionOrder inserts o, filling in ID, CreatedAt and the default
// status. A duplicate order_number returns ErrConflict.
func (db *DB) CreateProductionOrder(ctx context.Context, o *ProductionOrder) error {
	if o.Status == "" {
		o.Status = DefaultOrderStatus
	}
	o.CreatedAt = stamp(time.Now())
	o.DueDate = stamp(o.DueDate)

	err := db.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, db.Q(`INSERT INTO production_orders (order_number, product_code, quantity, status, created_at, due_date) VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
			o.OrderNumber, o.ProductCode, o.Quantity, o.Status,
			db.dialect.BindTime(o.CreatedAt), db.dialect.BindTime(o.DueDate)).Scan(&o.ID)
	})
	return db.classify("create production order", err)
}

func (db *DB) ListProductionOrders(ctx context.Context) ([]*ProductionOrder, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM production_orders ORDER BY id`, productionOrderSelectCols))
	if err != nil {
		return nil, db.classify("list production orders", err)
	}
	defer rows.Close()
	orders, err := scanProductionOrders(rows)
	return orders, db.classify("list production orders", err)
}

func (db *DB) GetProductionOrder(ctx context.Context, id int64) (*ProductionOrder, error) {
	row := db.QueryRowContext(ctx, db.Q(fmt.Sprintf(`SELECT %s FROM production_orders WHERE id=?`, productionOrderSelectCols)), id)
	o, err := scanProductionOrder(row)
	if err != nil {
		return nil, db.classify(fmt.Sprintf("get production order %d", id), err)
	}
	return o, nil
}

// UpdateProductionOrder applies p to the stored order inside one transaction
// and returns the merged record.
func (db *DB) UpdateProductionOrder(ctx context.Context, id int64, p ProductionOrderPatch) (*ProductionOrder, error) {
	var updated ProductionOrder
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, db.lockRowQuery(productionOrderSelectCols, "production_orders"), id)
		cur, err := scanProductionOrder(row)
		if err != nil {
			return err
		}
		updated = p.Apply(*cur)
		_, err = tx.ExecContext(ctx, db.Q(`UPDATE production_orders SET order_number=?, product_code=?, quantity=?, status=?, due_date=? WHERE id=?`),
			updated.OrderNumber, updated.ProductCode, updated.Quantity, updated.Status,
			db.dialect.BindTime(updated.DueDate), id)
		return err
	})
	if err != nil {
		return nil, db.classify(fmt.Sprintf("update production order %d", id), err)
	}
	return &updated, nil
}

func (db *DB) DeleteProductionOrder(ctx context.Context, id int64) error {
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		return deleteByID(ctx, tx, db.Q(`DELETE FROM production_orders WHERE id=?`), id)
	})
	return db.classify(fmt.Sprintf("delete production order %d", id), err)
}

// deleteByID runs a single-row delete and reports sql.ErrNoRows when nothing
// matched.
func deleteByID(ctx context.Context, tx *sql.Tx, query string, id int64) error {
	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
