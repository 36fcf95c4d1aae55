// Package archive opens data tables that may be stored compressed.
// A table named "spelling_crosswalk.csv" may be shipped as-is, as
// "spelling_crosswalk.csv.xz" or as "spelling_crosswalk.csv.gz".
package archive

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/ulikunitz/xz"
)

// Suffixes lists the compression suffixes tried by Open, in order.
var Suffixes = []string{"", ".xz", ".gz"}

// Reader wraps a table file with automatic decompression handling.
type Reader struct {
	io.Reader
	// Name is the file that was actually opened, including any suffix.
	Name         string
	file         fs.File
	decompressor io.Closer
}

// Open opens name from fsys, falling back to its compressed variants.
// When none exist the returned error wraps fs.ErrNotExist.
func Open(fsys fs.FS, name string) (*Reader, error) {
	var firstErr error
	for _, suffix := range Suffixes {
		r, err := openFile(fsys, name+suffix)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, firstErr
}

func openFile(fsys fs.FS, name string) (*Reader, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}

	var reader io.Reader = f
	var decompressor io.Closer

	switch {
	case strings.HasSuffix(name, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader %s: %w", name, err)
		}
		reader = xzr
	case strings.HasSuffix(name, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader %s: %w", name, err)
		}
		reader = gzr
		decompressor = gzr
	}

	return &Reader{
		Reader:       reader,
		Name:         name,
		file:         f,
		decompressor: decompressor,
	}, nil
}

// Close closes the reader and any underlying decompressor.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ReadFile opens name (or a compressed variant) and returns its
// decompressed content.
func ReadFile(fsys fs.FS, name string) ([]byte, error) {
	r, err := Open(fsys, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
