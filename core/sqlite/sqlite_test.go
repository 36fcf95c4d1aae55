package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
)

func TestDriverInfo(t *testing.T) {
	info := GetInfo()

	if info.DriverName != DriverName() {
		t.Errorf("DriverName mismatch: info=%s, func=%s", info.DriverName, DriverName())
	}
	if info.DriverType != DriverType() {
		t.Errorf("DriverType mismatch: info=%s, func=%s", info.DriverType, DriverType())
	}
	if info.IsCGO != IsCGO() {
		t.Errorf("IsCGO mismatch: info=%v, func=%v", info.IsCGO, IsCGO())
	}
	if info.Package == "" {
		t.Error("Package should not be empty")
	}
}

func TestOpenAndReadOnly(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pack.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE exceptions (en_US TEXT, en_GB TEXT, policy TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO exceptions VALUES ('practice', 'practise', 'skip')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	ro, err := OpenReadOnly(dbPath)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}
	defer ro.Close()

	var policy string
	if err := ro.QueryRow(`SELECT policy FROM exceptions WHERE en_US = 'practice'`).Scan(&policy); err != nil {
		t.Fatalf("query: %v", err)
	}
	if policy != "skip" {
		t.Errorf("policy = %q, want skip", policy)
	}

	if _, err := ro.Exec(`INSERT INTO exceptions VALUES ('a', 'b', 'skip')`); err == nil {
		t.Error("write through read-only handle should fail")
	}
}

func TestOpenReadOnlyMissing(t *testing.T) {
	_, err := OpenReadOnly(filepath.Join(t.TempDir(), "missing.db"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("OpenReadOnly(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMustOpen(t *testing.T) {
	db := MustOpen(filepath.Join(t.TempDir(), "must.db"))
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestTableExists(t *testing.T) {
	db := MustOpen(filepath.Join(t.TempDir(), "tables.db"))
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE crosswalk (lemma TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	for name, want := range map[string]bool{"crosswalk": true, "exceptions": false} {
		got, err := TableExists(db, name)
		if err != nil {
			t.Fatalf("TableExists(%s): %v", name, err)
		}
		if got != want {
			t.Errorf("TableExists(%s) = %v, want %v", name, got, want)
		}
	}
}
