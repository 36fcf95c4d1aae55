package policy

import (
	"encoding/hex"
	"strings"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/internal/embedded"
	"github.com/FocuswithJustin/EnglishVariant/internal/logging"
)

// Load builds a table from src. A missing exceptions table yields an empty
// table that allows every swap. Entries with an empty word or an
// unparseable policy are skipped with a warning.
func Load(src Source, opts ...Option) (*Table, error) {
	entries, err := src.Entries()
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			logging.TableMissing(TableName, src.Origin(), err)
			return newTable(src.Origin(), opts), nil
		}
		return nil, errors.Wrap(err, "load exceptions")
	}
	t := New(src.Origin(), entries, opts...)
	skip, conditional := t.Len()
	logging.TableLoaded(TableName, t.origin, len(t.entries), "skip", skip, "conditional", conditional)
	return t, nil
}

// New builds a table from in-memory entries.
func New(origin string, entries []Entry, opts ...Option) *Table {
	t := newTable(origin, opts)
	for _, e := range entries {
		us := strings.ToLower(strings.TrimSpace(e.US))
		gb := strings.ToLower(strings.TrimSpace(e.GB))
		if us == "" || gb == "" {
			continue
		}
		res, err := ParsePolicy(e.Policy)
		if err != nil {
			logging.Warn("exception_policy_invalid", "origin", origin, "en_US", us, "en_GB", gb, "error", err.Error())
			continue
		}
		key := pair{us, gb}
		switch res.Action {
		case Skip:
			t.skip[key] = struct{}{}
		case Conditional:
			t.conditional[key] = res.Rule
			if !t.HasRule(res.Rule) {
				logging.Warn("exception_rule_unknown", "origin", origin, "rule", res.Rule, "en_US", us, "en_GB", gb)
			}
		}
		t.entries = append(t.entries, Entry{US: us, GB: gb, Policy: res.String(), Notes: e.Notes})
	}
	return t
}

// Entries returns the accepted entries in load order, normalized to
// lowercase. The slice must not be modified.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Fingerprint returns a BLAKE3 digest of the accepted entries.
func (t *Table) Fingerprint() string {
	h := blake3.New()
	for _, e := range t.entries {
		h.Write([]byte(e.US))
		h.Write([]byte{0x1f})
		h.Write([]byte(e.GB))
		h.Write([]byte{0x1f})
		h.Write([]byte(e.Policy))
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table loaded from the embedded data set.
// A load failure yields an empty table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(FSSource{FS: embedded.FS(), Name: "embedded"})
		if err != nil {
			logging.Error("exceptions_load_failed", "origin", "embedded", "error", err.Error())
			t = newTable("embedded", nil)
		}
		defaultTable = t
	})
	return defaultTable
}
