package policy

import (
	"database/sql"
	"errors"
	"io/fs"

	everrors "github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/core/sqlite"
	"github.com/FocuswithJustin/EnglishVariant/internal/archive"
	"github.com/FocuswithJustin/EnglishVariant/internal/embedded"
)

// TableName is the exceptions table inside a data pack.
const TableName = "exceptions"

// Source provides exception entries. A source without an exceptions table
// returns an error matching errors.ErrNotFound.
type Source interface {
	Entries() ([]Entry, error)
	Origin() string
}

// FSSource reads exceptions/spelling_exceptions.csv (optionally compressed)
// from a file system.
type FSSource struct {
	FS   fs.FS
	Name string
}

// Entries implements Source.
func (s FSSource) Entries() ([]Entry, error) {
	r, err := archive.Open(s.FS, embedded.ExceptionsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &everrors.NotFoundError{Resource: "exceptions", ID: embedded.ExceptionsFile, Err: err}
		}
		return nil, everrors.NewIO("open", embedded.ExceptionsFile, err)
	}
	defer r.Close()
	return ReadCSV(r, r.Name)
}

// Origin implements Source.
func (s FSSource) Origin() string {
	return s.Name
}

// SQLiteSource reads the exceptions table of a data pack.
type SQLiteSource struct {
	DB   *sql.DB
	Path string
}

// Entries implements Source.
func (s SQLiteSource) Entries() ([]Entry, error) {
	ok, err := sqlite.TableExists(s.DB, TableName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, everrors.NewNotFound("exceptions", TableName)
	}

	rows, err := s.DB.Query("SELECT en_US, en_GB, policy, notes FROM exceptions ORDER BY rowid")
	if err != nil {
		return nil, everrors.NewIO("query", s.Path, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.US, &e.GB, &e.Policy, &e.Notes); err != nil {
			return nil, everrors.NewIO("scan", s.Path, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, everrors.NewIO("read", s.Path, err)
	}
	return entries, nil
}

// Origin implements Source.
func (s SQLiteSource) Origin() string {
	return s.Path
}

const createTable = `
CREATE TABLE IF NOT EXISTS exceptions (
	en_US TEXT NOT NULL,
	en_GB TEXT NOT NULL,
	policy TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);
`

// WriteSQLite stores the table's entries in db, replacing any previous
// exceptions table content.
func WriteSQLite(db *sql.DB, t *Table) error {
	if _, err := db.Exec(createTable); err != nil {
		return everrors.NewIO("create", TableName, err)
	}
	tx, err := db.Begin()
	if err != nil {
		return everrors.NewIO("begin", TableName, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM exceptions"); err != nil {
		return everrors.NewIO("clear", TableName, err)
	}
	stmt, err := tx.Prepare("INSERT INTO exceptions (en_US, en_GB, policy, notes) VALUES (?, ?, ?, ?)")
	if err != nil {
		return everrors.NewIO("prepare", TableName, err)
	}
	defer stmt.Close()

	for _, e := range t.Entries() {
		if _, err := stmt.Exec(e.US, e.GB, e.Policy, e.Notes); err != nil {
			return everrors.Wrapf(err, "insert %s/%s", e.US, e.GB)
		}
	}
	if err := tx.Commit(); err != nil {
		return everrors.NewIO("commit", TableName, err)
	}
	return nil
}
