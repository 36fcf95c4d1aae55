package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Writer compresses according to the destination file suffix.
type Writer struct {
	io.Writer
	file       *os.File
	compressor io.Closer
}

// Create creates path (and its parent directory) and returns a writer that
// compresses with xz for ".xz", gzip for ".gz", and writes plain otherwise.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := &Writer{Writer: f, file: f}
	switch {
	case strings.HasSuffix(path, ".xz"):
		xw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		w.Writer = xw
		w.compressor = xw
	case strings.HasSuffix(path, ".gz"):
		gw := gzip.NewWriter(f)
		w.Writer = gw
		w.compressor = gw
	}
	return w, nil
}

// Close flushes the compressor and closes the file.
func (w *Writer) Close() error {
	if w.compressor != nil {
		if err := w.compressor.Close(); err != nil {
			w.file.Close()
			return fmt.Errorf("flush compressor: %w", err)
		}
	}
	return w.file.Close()
}
