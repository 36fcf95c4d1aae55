//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3, selected with the cgo_sqlite
// build tag (CGO_ENABLED=1 go build -tags cgo_sqlite).
package sqlite

import (
	sqliteexternal "github.com/FocuswithJustin/EnglishVariant/contrib/sqlite-external"
)

const (
	driverName    = sqliteexternal.DriverName
	driverType    = "cgo"
	driverPackage = sqliteexternal.DriverPackage + " (via contrib/sqlite-external)"
)
