package crosswalk

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/core/variant"
)

// Header is the column layout of crosswalk CSV files and SQLite tables.
var Header = []string{"variant_id", "lemma", "type", "en_US", "en_GB", "en_AU", "en_CA", "notes", "source"}

// ReadCSV parses a crosswalk table. Columns are matched by header name and
// may appear in any order; absent columns read as empty. Every returned row
// is tagged with kind regardless of its type column. name is only used in
// error messages.
func ReadCSV(r io.Reader, kind Kind, name string) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, &errors.ParseError{Format: "CSV", Path: name, Message: "read header", Err: err}
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	hasVariant := false
	for _, v := range variant.All {
		if _, ok := index[string(v)]; ok {
			hasVariant = true
		}
	}
	if !hasVariant {
		return nil, errors.NewParse("CSV", name, "header has no variant columns")
	}

	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.ParseError{Format: "CSV", Path: name, Message: "read record", Err: err}
		}
		row := Row{
			VariantID: cell(record, "variant_id"),
			Lemma:     cell(record, "lemma"),
			Type:      kind,
			Spellings: make(map[variant.Variant]string, len(variant.All)),
			Notes:     cell(record, "notes"),
			Source:    cell(record, "source"),
		}
		for _, v := range variant.All {
			if s := cell(record, string(v)); s != "" {
				row.Spellings[v] = s
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes rows with the standard Header.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, row := range rows {
		if err := writer.Write(row.record()); err != nil {
			return errors.Wrapf(err, "write row %s", row.VariantID)
		}
	}
	writer.Flush()
	return writer.Error()
}

// record renders the row in Header order.
func (r Row) record() []string {
	return []string{
		r.VariantID,
		r.Lemma,
		string(r.Type),
		r.Spellings[variant.EnUS],
		r.Spellings[variant.EnGB],
		r.Spellings[variant.EnAU],
		r.Spellings[variant.EnCA],
		r.Notes,
		r.Source,
	}
}
