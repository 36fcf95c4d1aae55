package embedded_test

import (
	"encoding/csv"
	"io/fs"
	"testing"

	"github.com/FocuswithJustin/EnglishVariant/internal/embedded"
)

// TestEmbeddedTables verifies that every default table is bundled and has the
// header the loaders expect.
func TestEmbeddedTables(t *testing.T) {
	tests := []struct {
		file   string
		header []string
	}{
		{embedded.SpellingFile, []string{"variant_id", "lemma", "type", "en_US", "en_GB", "en_AU", "en_CA", "notes", "source"}},
		{embedded.LexicalFile, []string{"variant_id", "lemma", "type", "en_US", "en_GB", "en_AU", "en_CA", "notes", "source"}},
		{embedded.ExceptionsFile, []string{"en_US", "en_GB", "policy", "notes"}},
	}

	fsys := embedded.FS()
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			f, err := fsys.Open(tt.file)
			if err != nil {
				t.Fatalf("open %s: %v", tt.file, err)
			}
			defer f.Close()

			records, err := csv.NewReader(f).ReadAll()
			if err != nil {
				t.Fatalf("read %s: %v", tt.file, err)
			}
			if len(records) < 2 {
				t.Fatalf("%s has no data rows", tt.file)
			}
			for i, col := range tt.header {
				if records[0][i] != col {
					t.Errorf("%s header[%d] = %q, want %q", tt.file, i, records[0][i], col)
				}
			}
		})
	}

	if _, err := fs.Stat(fsys, "exceptions"); err != nil {
		t.Errorf("exceptions directory missing: %v", err)
	}
}
