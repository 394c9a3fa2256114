package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect interface {
	AutoIncrementPK() string
	IDType() string
	FloatType() string
	TimestampType() string
	BoolType() string
	// ForUpdate is appended to a SELECT that precedes a write of the same row.
	ForUpdate() string
	// BindTime converts a timestamp into the value the driver should store.
	BindTime(t time.Time) any
	IsUniqueViolation(err error) bool
}

type sqliteDialect struct{}

func (d sqliteDialect) AutoIncrementPK() string  { return "INTEGER PRIMARY KEY AUTOINCREMENT" }
func (d sqliteDialect) IDType() string           { return "INTEGER" }
func (d sqliteDialect) FloatType() string        { return "REAL" }
func (d sqliteDialect) TimestampType() string    { return "TEXT" }
func (d sqliteDialect) BoolType() string         { return "INTEGER" }

// SQLite has no row locks; the single open connection already serializes
// the read and the write.
func (d sqliteDialect) ForUpdate() string { return "" }

// BindTime stores RFC 3339 text, independent of the driver's time format.
func (d sqliteDialect) BindTime(t time.Time) any { return t.UTC().Format(time.RFC3339Nano) }

func (d sqliteDialect) IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return false
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type postgresDialect struct{}

func (d postgresDialect) AutoIncrementPK() string  { return "BIGSERIAL PRIMARY KEY" }
func (d postgresDialect) IDType() string           { return "BIGINT" }
func (d postgresDialect) FloatType() string        { return "DOUBLE PRECISION" }
func (d postgresDialect) TimestampType() string    { return "TIMESTAMPTZ" }
func (d postgresDialect) BoolType() string         { return "BOOLEAN" }
func (d postgresDialect) BindTime(t time.Time) any { return t.UTC() }
func (d postgresDialect) ForUpdate() string        { return " FOR UPDATE" }

// 23505 is unique_violation.
func (d postgresDialect) IsUniqueViolation(err error) bool {
	var pe *pgconn.PgError
	return errors.As(err, &pe) && pe.Code == "23505"
}

// parseTime converts a scanned timestamp value to time.Time in UTC.
// Handles both SQLite (returns string) and Postgres (returns time.Time).
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case []byte:
		return parseTime(string(t))
	case string:
		if t == "" {
			return time.Time{}
		}
		for _, layout := range []string{
			time.RFC3339Nano,
			"2006-01-02 15:04:05",
			"2006-01-02 15:04:05-07:00",
			"2006-01-02 15:04:05.999999999 -0700 MST",
		} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	}
	return time.Time{}
}

// stamp normalizes a timestamp to what both dialects can round-trip.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func Rebind(query string) string {
	n := 0
	var b strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteString(fmt.Sprintf("$%d", n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}
