package crosswalk

import (
	"errors"
	"io/fs"

	everrors "github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/internal/archive"
	"github.com/FocuswithJustin/EnglishVariant/internal/embedded"
)

// Source provides crosswalk rows for one table kind. A source that has no
// table for kind returns an error matching errors.ErrNotFound.
type Source interface {
	Rows(kind Kind) ([]Row, error)
	// Origin describes where the rows come from, for logging.
	Origin() string
}

// FSSource reads the CSV tables from a file system, accepting .xz and .gz
// compressed copies.
type FSSource struct {
	FS   fs.FS
	Name string // Origin label, e.g. "embedded" or a directory path
}

// FileFor returns the table file name for kind.
func FileFor(kind Kind) string {
	if kind == LexicalChoice {
		return embedded.LexicalFile
	}
	return embedded.SpellingFile
}

// Rows implements Source.
func (s FSSource) Rows(kind Kind) ([]Row, error) {
	name := FileFor(kind)
	r, err := archive.Open(s.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &everrors.NotFoundError{Resource: "crosswalk", ID: name, Err: err}
		}
		return nil, everrors.NewIO("open", name, err)
	}
	defer r.Close()
	return ReadCSV(r, kind, r.Name)
}

// Origin implements Source.
func (s FSSource) Origin() string {
	return s.Name
}
