package store

import "fmt"

// schema returns the idempotent DDL for the given dialect. Order and check
// references are plain integer columns: no foreign keys, no cascades.
func schema(d Dialect) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS production_orders (
    id           %s,
    order_number TEXT NOT NULL UNIQUE,
    product_code TEXT NOT NULL DEFAULT '',
    quantity     %s NOT NULL DEFAULT 0,
    status       TEXT NOT NULL DEFAULT 'pending',
    created_at   %s NOT NULL,
    due_date     %s NOT NULL
)`, d.AutoIncrementPK(), d.IDType(), d.TimestampType(), d.TimestampType()),
		`CREATE INDEX IF NOT EXISTS idx_production_orders_product ON production_orders(product_code)`,

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS workstations (
    id               %s,
    name             TEXT NOT NULL UNIQUE,
    location         TEXT NOT NULL DEFAULT '',
    status           TEXT NOT NULL DEFAULT 'idle',
    current_order_id %s
)`, d.AutoIncrementPK(), d.IDType()),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS quality_checks (
    id                %s,
    order_id          %s NOT NULL,
    parameter         TEXT NOT NULL DEFAULT '',
    value             %s NOT NULL,
    specification_min %s NOT NULL,
    specification_max %s NOT NULL,
    passed            %s NOT NULL,
    checked_at        %s NOT NULL
)`, d.AutoIncrementPK(), d.IDType(), d.FloatType(), d.FloatType(), d.FloatType(), d.BoolType(), d.TimestampType()),
		`CREATE INDEX IF NOT EXISTS idx_quality_checks_order ON quality_checks(order_id)`,
	}
}
