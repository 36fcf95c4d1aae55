// Package sqliteexternal registers the optional CGO SQLite driver used to
// read and write converter data packs.
//
// Import it for side effects:
//
//	import _ "github.com/FocuswithJustin/EnglishVariant/contrib/sqlite-external"
//
// and build with:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/evc
//
// Without the tag, core/sqlite uses the pure Go modernc.org/sqlite driver.
package sqliteexternal
