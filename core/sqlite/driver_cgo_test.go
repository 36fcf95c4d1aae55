//go:build cgo_sqlite

package sqlite

import (
	"testing"

	sqliteexternal "github.com/FocuswithJustin/EnglishVariant/contrib/sqlite-external"
)

func TestCGODriverFromContrib(t *testing.T) {
	if DriverName() != sqliteexternal.DriverName {
		t.Errorf("DriverName() = %q, want %q", DriverName(), sqliteexternal.DriverName)
	}
	if !IsCGO() {
		t.Error("IsCGO() should be true with the cgo_sqlite tag")
	}
}
