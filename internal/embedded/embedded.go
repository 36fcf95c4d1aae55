// Package embedded bundles the default crosswalk and exceptions tables into
// the binary so evc works without any external data directory.
package embedded

import (
	"embed"
	"io/fs"
)

//go:embed data
var data embed.FS

// Table file names, relative to the data root.
const (
	SpellingFile   = "spelling_crosswalk.csv"
	LexicalFile    = "lexical_crosswalk.csv"
	ExceptionsFile = "exceptions/spelling_exceptions.csv"
)

// FS returns the embedded data tree rooted at the table directory.
func FS() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
