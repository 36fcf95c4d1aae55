package crosswalk

import (
	"database/sql"
	"strings"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/core/sqlite"
	"github.com/FocuswithJustin/EnglishVariant/core/variant"
)

// TableName is the crosswalk table inside a data pack.
const TableName = "crosswalk"

const createTable = `
CREATE TABLE IF NOT EXISTS crosswalk (
	variant_id TEXT NOT NULL,
	lemma TEXT NOT NULL,
	type TEXT NOT NULL,
	en_US TEXT NOT NULL DEFAULT '',
	en_GB TEXT NOT NULL DEFAULT '',
	en_AU TEXT NOT NULL DEFAULT '',
	en_CA TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_crosswalk_type ON crosswalk(type);
`

// SQLiteSource reads crosswalk rows from a data pack.
type SQLiteSource struct {
	DB   *sql.DB
	Path string
}

// Rows implements Source. Rows come back in insertion order.
func (s SQLiteSource) Rows(kind Kind) ([]Row, error) {
	ok, err := sqlite.TableExists(s.DB, TableName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFound("crosswalk", TableName)
	}

	query := "SELECT " + strings.Join(Header, ", ") + " FROM crosswalk WHERE type = ? ORDER BY rowid"
	rs, err := s.DB.Query(query, string(kind))
	if err != nil {
		return nil, errors.NewIO("query", s.Path, err)
	}
	defer rs.Close()

	var rows []Row
	for rs.Next() {
		var (
			row                 Row
			typ, us, gb, au, ca string
		)
		if err := rs.Scan(&row.VariantID, &row.Lemma, &typ, &us, &gb, &au, &ca, &row.Notes, &row.Source); err != nil {
			return nil, errors.NewIO("scan", s.Path, err)
		}
		row.Type = kind
		row.Spellings = make(map[variant.Variant]string, len(variant.All))
		for v, spelling := range map[variant.Variant]string{
			variant.EnUS: us, variant.EnGB: gb, variant.EnAU: au, variant.EnCA: ca,
		} {
			if spelling = strings.TrimSpace(spelling); spelling != "" {
				row.Spellings[v] = spelling
			}
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, errors.NewIO("read", s.Path, err)
	}
	return rows, nil
}

// Origin implements Source.
func (s SQLiteSource) Origin() string {
	return s.Path
}

// WriteSQLite stores every row of s in db, replacing any previous crosswalk
// table content.
func WriteSQLite(db *sql.DB, s *Store) error {
	if _, err := db.Exec(createTable); err != nil {
		return errors.NewIO("create", TableName, err)
	}
	tx, err := db.Begin()
	if err != nil {
		return errors.NewIO("begin", TableName, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM crosswalk"); err != nil {
		return errors.NewIO("clear", TableName, err)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(Header)), ", ")
	stmt, err := tx.Prepare("INSERT INTO crosswalk (" + strings.Join(Header, ", ") + ") VALUES (" + placeholders + ")")
	if err != nil {
		return errors.NewIO("prepare", TableName, err)
	}
	defer stmt.Close()

	for _, kind := range Kinds {
		for _, row := range s.Rows(kind) {
			record := row.record()
			args := make([]any, len(record))
			for i, field := range record {
				args[i] = field
			}
			if _, err := stmt.Exec(args...); err != nil {
				return errors.Wrapf(err, "insert %s", row.VariantID)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.NewIO("commit", TableName, err)
	}
	return nil
}
