// Package sqlstore implements the storage queries shared by the SQLite and
// PostgreSQL backends. Queries are written with ? placeholders and rebound
// for PostgreSQL.
package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/cadence/internal/migration"
	"github.com/julianstephens/cadence/internal/storage"
)

type Store struct {
	db      *sql.DB
	dialect migration.Dialect
}

func New(db *sql.DB, dialect migration.Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

// Rebind rewrites ? placeholders to $n for PostgreSQL
func Rebind(dialect migration.Dialect, query string) string {
	if dialect != migration.DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(query string, args ...interface{}) (sql.Result, error) {
	return s.db.Exec(Rebind(s.dialect, query), args...)
}

func (s *Store) query(query string, args ...interface{}) (*sql.Rows, error) {
	return s.db.Query(Rebind(s.dialect, query), args...)
}

func (s *Store) queryRow(query string, args ...interface{}) *sql.Row {
	return s.db.QueryRow(Rebind(s.dialect, query), args...)
}

// notFound maps sql.ErrNoRows to storage.ErrNotFound
func notFound(err error, what, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, storage.ErrNotFound)
	}
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

func now() string {
	return formatTime(time.Now())
}

// softDelete sets deleted_at on a live row of table
func (s *Store) softDelete(table, what, id string) error {
	var deletedAt sql.NullString
	err := s.queryRow("SELECT deleted_at FROM "+table+" WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		return notFound(err, what, id)
	}
	if deletedAt.Valid {
		return fmt.Errorf("%s with id %s is already deleted", what, id)
	}
	_, err = s.exec("UPDATE "+table+" SET deleted_at = ? WHERE id = ?", now(), id)
	return err
}
