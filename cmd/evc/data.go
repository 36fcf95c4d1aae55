package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FocuswithJustin/EnglishVariant/core/convert"
	"github.com/FocuswithJustin/EnglishVariant/core/crosswalk"
	"github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/core/policy"
	"github.com/FocuswithJustin/EnglishVariant/core/rules"
	"github.com/FocuswithJustin/EnglishVariant/core/sqlite"
	"github.com/FocuswithJustin/EnglishVariant/internal/archive"
	"github.com/FocuswithJustin/EnglishVariant/internal/embedded"
	"github.com/FocuswithJustin/EnglishVariant/internal/validation"
)

// dataSet is the crosswalk store and exception table a command works on.
type dataSet struct {
	origin     string
	crosswalk  *crosswalk.Store
	exceptions *policy.Table
}

// loadData resolves the configured data source: a SQLite pack, a data
// directory, or the embedded tables.
func (a *App) loadData() (*dataSet, error) {
	if a.data != nil {
		return a.data, nil
	}

	var ds *dataSet
	switch {
	case a.cfg.Database != "":
		path := a.cfg.Database
		if err := validation.ValidateDatabase(path); err != nil {
			return nil, fmt.Errorf("invalid database: %w", err)
		}
		db, err := sqlite.OpenReadOnly(path)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		store, err := crosswalk.Load(crosswalk.SQLiteSource{DB: db, Path: path})
		if err != nil {
			return nil, err
		}
		table, err := policy.Load(policy.SQLiteSource{DB: db, Path: path})
		if err != nil {
			return nil, err
		}
		ds = &dataSet{origin: path, crosswalk: store, exceptions: table}

	case a.cfg.DataDir != "":
		dir := a.cfg.DataDir
		if err := validation.ValidateDataDir(dir); err != nil {
			return nil, fmt.Errorf("invalid data directory: %w", err)
		}
		fsys := os.DirFS(dir)
		store, err := crosswalk.Load(crosswalk.FSSource{FS: fsys, Name: dir})
		if err != nil {
			return nil, err
		}
		table, err := policy.Load(policy.FSSource{FS: fsys, Name: dir})
		if err != nil {
			return nil, err
		}
		ds = &dataSet{origin: dir, crosswalk: store, exceptions: table}

	default:
		ds = &dataSet{origin: "embedded", crosswalk: crosswalk.Default(), exceptions: policy.Default()}
	}

	a.data = ds
	return ds, nil
}

func (a *App) converter() (*convert.Converter, error) {
	ds, err := a.loadData()
	if err != nil {
		return nil, err
	}
	if ds.origin == "embedded" {
		return convert.Default(), nil
	}
	return convert.New(rules.NewEngine(ds.crosswalk), ds.exceptions), nil
}

// DataGroup contains data table operations.
type DataGroup struct {
	Verify DataVerifyCmd `cmd:"" help:"Check crosswalk integrity; exits non-zero on issues"`
	Info   DataInfoCmd   `cmd:"" help:"Show table sizes and fingerprints"`
	Pack   DataPackCmd   `cmd:"" help:"Write the loaded tables into a SQLite data pack"`
	Export DataExportCmd `cmd:"" help:"Write the loaded tables as CSV files"`
}

// DataVerifyCmd checks the loaded crosswalk tables.
type DataVerifyCmd struct{}

func (c *DataVerifyCmd) Run(app *App) error {
	ds, err := app.loadData()
	if err != nil {
		return err
	}

	issues := crosswalk.Verify(ds.crosswalk)
	if len(issues) > 0 {
		fmt.Fprintln(app.stdout, "Found issues:")
		for _, issue := range issues {
			fmt.Fprintf(app.stdout, "  - %s\n", issue)
		}
		return fmt.Errorf("%d crosswalk issue(s) in %s", len(issues), ds.origin)
	}

	spelling := ds.crosswalk.Len(crosswalk.SpellingOnly)
	lexical := ds.crosswalk.Len(crosswalk.LexicalChoice)
	fmt.Fprintf(app.stdout, "OK: %d spelling rows, %d lexical rows (total %d)\n", spelling, lexical, spelling+lexical)
	return nil
}

// DataInfoCmd prints a summary of the loaded tables.
type DataInfoCmd struct{}

func (c *DataInfoCmd) Run(app *App) error {
	ds, err := app.loadData()
	if err != nil {
		return err
	}
	skip, conditional := ds.exceptions.Len()
	driver := sqlite.GetInfo()

	fmt.Fprintln(app.stdout, "Data Source")
	fmt.Fprintln(app.stdout, "-----------")
	fmt.Fprintf(app.stdout, "  Origin:        %s\n", ds.origin)
	fmt.Fprintf(app.stdout, "  SQLite driver: %s (%s)\n", driver.DriverType, driver.Package)
	fmt.Fprintln(app.stdout)
	fmt.Fprintln(app.stdout, "Crosswalk")
	fmt.Fprintln(app.stdout, "---------")
	fmt.Fprintf(app.stdout, "  Spelling rows: %d\n", ds.crosswalk.Len(crosswalk.SpellingOnly))
	fmt.Fprintf(app.stdout, "  Lexical rows:  %d\n", ds.crosswalk.Len(crosswalk.LexicalChoice))
	fmt.Fprintf(app.stdout, "  Dropped rows:  %d\n", ds.crosswalk.Dropped())
	fmt.Fprintf(app.stdout, "  Fingerprint:   %s\n", ds.crosswalk.Fingerprint())
	fmt.Fprintln(app.stdout)
	fmt.Fprintln(app.stdout, "Exceptions")
	fmt.Fprintln(app.stdout, "----------")
	fmt.Fprintf(app.stdout, "  Skip pairs:        %d\n", skip)
	fmt.Fprintf(app.stdout, "  Conditional pairs: %d\n", conditional)
	fmt.Fprintf(app.stdout, "  Fingerprint:       %s\n", ds.exceptions.Fingerprint())
	return nil
}

// DataPackCmd writes a SQLite data pack.
type DataPackCmd struct {
	Out string `required:"" help:"Output SQLite file" type:"path"`
}

func (c *DataPackCmd) Run(app *App) error {
	if err := validation.ValidateOutput(c.Out); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	ds, err := app.loadData()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.Out), 0755); err != nil {
		return errors.NewIO("create", filepath.Dir(c.Out), err)
	}

	db, err := sqlite.Open(c.Out)
	if err != nil {
		return errors.NewIO("open", c.Out, err)
	}
	defer db.Close()

	if err := crosswalk.WriteSQLite(db, ds.crosswalk); err != nil {
		return err
	}
	if err := policy.WriteSQLite(db, ds.exceptions); err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Packed %s into %s\n", ds.origin, c.Out)
	return nil
}

// DataExportCmd writes the loaded tables as a data directory that
// --data-dir can read back.
type DataExportCmd struct {
	Out      string `required:"" help:"Output directory" type:"path"`
	Compress string `help:"Compression: none, xz or gz" default:"none" enum:"none,xz,gz"`
}

func (c *DataExportCmd) Run(app *App) error {
	if err := validation.ValidatePath(c.Out); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	ds, err := app.loadData()
	if err != nil {
		return err
	}

	suffix := ""
	if c.Compress != "none" {
		suffix = "." + c.Compress
	}
	for _, kind := range crosswalk.Kinds {
		path := filepath.Join(c.Out, crosswalk.FileFor(kind)+suffix)
		if err := writeFile(path, func(w *archive.Writer) error {
			return crosswalk.WriteCSV(w, ds.crosswalk.Rows(kind))
		}); err != nil {
			return err
		}
		fmt.Fprintf(app.stdout, "Wrote %s\n", path)
	}

	path := filepath.Join(c.Out, filepath.FromSlash(embedded.ExceptionsFile)+suffix)
	if err := writeFile(path, func(w *archive.Writer) error {
		return policy.WriteCSV(w, ds.exceptions.Entries())
	}); err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Wrote %s\n", path)
	return nil
}

func writeFile(path string, write func(*archive.Writer) error) error {
	w, err := archive.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	if err := write(w); err != nil {
		w.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := w.Close(); err != nil {
		return errors.NewIO("close", path, err)
	}
	return nil
}
