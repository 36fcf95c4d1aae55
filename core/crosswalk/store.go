// Package crosswalk loads the variant crosswalk tables: one of spelling-only
// pairs and one of lexical-choice pairs, each row mapping a lemma to its
// spelling in en_US, en_GB, en_AU and en_CA.
//
// A Store is immutable once loaded and safe for concurrent reads.
package crosswalk

import (
	"sync"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/internal/embedded"
	"github.com/FocuswithJustin/EnglishVariant/internal/logging"
)

// Store holds the loaded crosswalk rows, keyed by kind.
type Store struct {
	origin   string
	rows     map[Kind][]Row
	rejected []Row
}

// Load reads both tables from src. A missing table is not an error: it is
// logged and treated as empty. Rows violating the crosswalk invariants are
// dropped and counted (see Dropped).
func Load(src Source) (*Store, error) {
	s := &Store{
		origin: src.Origin(),
		rows:   make(map[Kind][]Row, len(Kinds)),
	}
	for _, kind := range Kinds {
		rows, err := src.Rows(kind)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				logging.TableMissing(string(kind), s.origin, err)
				continue
			}
			return nil, errors.Wrapf(err, "load %s crosswalk", kind)
		}
		kept := rows[:0:0]
		for _, row := range rows {
			if !row.Valid() {
				s.rejected = append(s.rejected, row)
				continue
			}
			kept = append(kept, row)
		}
		s.rows[kind] = kept
		logging.TableLoaded(string(kind), s.origin, len(kept), "dropped", len(rows)-len(kept))
	}
	return s, nil
}

// NewStore builds a Store from in-memory rows, applying the same validation
// as Load. Each row keeps its own Type.
func NewStore(origin string, rows []Row) *Store {
	s := &Store{origin: origin, rows: make(map[Kind][]Row, len(Kinds))}
	for _, row := range rows {
		if !row.Type.Valid() || !row.Valid() {
			s.rejected = append(s.rejected, row)
			continue
		}
		s.rows[row.Type] = append(s.rows[row.Type], row)
	}
	return s
}

// Rows returns the rows of kind in table order. The slice must not be modified.
func (s *Store) Rows(kind Kind) []Row {
	return s.rows[kind]
}

// Len returns the number of rows of kind.
func (s *Store) Len(kind Kind) int {
	return len(s.rows[kind])
}

// Dropped returns how many rows were rejected at load.
func (s *Store) Dropped() int {
	return len(s.rejected)
}

// Rejected returns the rows dropped at load, in load order.
func (s *Store) Rejected() []Row {
	return s.rejected
}

// Origin returns the source label the store was loaded from.
func (s *Store) Origin() string {
	return s.origin
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store loaded from the embedded data set.
// It is loaded on first use; a load failure yields an empty store.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := Load(FSSource{FS: embedded.FS(), Name: "embedded"})
		if err != nil {
			logging.Error("crosswalk_load_failed", "origin", "embedded", "error", err.Error())
			s = NewStore("embedded", nil)
		}
		defaultStore = s
	})
	return defaultStore
}
