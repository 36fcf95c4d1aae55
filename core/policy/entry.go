package policy

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
)

// Header is the column layout of the exceptions CSV and SQLite table.
var Header = []string{"en_US", "en_GB", "policy", "notes"}

// Entry is one row of the exceptions table, as stored.
type Entry struct {
	US     string
	GB     string
	Policy string
	Notes  string
}

// ReadCSV parses an exceptions table. en_US, en_GB and policy columns are
// required; other columns are ignored apart from notes.
func ReadCSV(r io.Reader, name string) ([]Entry, error) {
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
	for _, col := range Header[:3] {
		if _, ok := index[col]; !ok {
			return nil, errors.NewParse("CSV", name, "missing column "+col)
		}
	}
	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.ParseError{Format: "CSV", Path: name, Message: "read record", Err: err}
		}
		entries = append(entries, Entry{
			US:     cell(record, "en_US"),
			GB:     cell(record, "en_GB"),
			Policy: cell(record, "policy"),
			Notes:  cell(record, "notes"),
		})
	}
	return entries, nil
}

// WriteCSV writes entries with the standard Header.
func WriteCSV(w io.Writer, entries []Entry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, e := range entries {
		if err := writer.Write([]string{e.US, e.GB, e.Policy, e.Notes}); err != nil {
			return errors.Wrapf(err, "write exception %s/%s", e.US, e.GB)
		}
	}
	writer.Flush()
	return writer.Error()
}
