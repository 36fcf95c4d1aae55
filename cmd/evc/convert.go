package main

import (
	"fmt"
	"io"

	"github.com/FocuswithJustin/EnglishVariant/core/convert"
	"github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/core/variant"
	"github.com/FocuswithJustin/EnglishVariant/internal/logging"
)

// ConvertCmd converts standard input to standard output.
type ConvertCmd struct {
	From  string `name:"from" help:"Source variant" default:"en_US" enum:"en_US,en_GB,en_AU,en_CA"`
	To    string `name:"to" help:"Target variant" default:"en_GB" enum:"en_US,en_GB,en_AU,en_CA"`
	Mode  string `name:"mode" help:"spelling_only, or spelling_and_lexical to also swap word choices" default:"spelling_only" enum:"spelling_only,spelling_and_lexical"`
	Stats string `name:"stats" help:"Emit swap statistics to stderr: table or json" default:"" enum:",table,json"`
}

func (c *ConvertCmd) options() (convert.Options, error) {
	source, err := variant.Parse(c.From)
	if err != nil {
		return convert.Options{}, err
	}
	target, err := variant.Parse(c.To)
	if err != nil {
		return convert.Options{}, err
	}
	mode, err := variant.ParseMode(c.Mode)
	if err != nil {
		return convert.Options{}, err
	}
	return convert.Options{Source: source, Target: target, Mode: mode}, nil
}

func (c *ConvertCmd) Run(app *App) error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	converter, err := app.converter()
	if err != nil {
		return err
	}

	input, err := io.ReadAll(app.stdin)
	if err != nil {
		return errors.NewIO("read", "stdin", err)
	}
	out, stats, err := converter.ConvertWithStats(string(input), opts)
	if err != nil {
		return err
	}
	logging.ConversionComplete(app.ctx, string(opts.Source), string(opts.Target), string(opts.Mode),
		stats.TotalTokens, stats.ConvertedTokens, stats.ProtectedTokens)

	switch c.Stats {
	case "json":
		report, err := stats.JSON()
		if err != nil {
			return errors.Wrap(err, "encode stats")
		}
		fmt.Fprintln(app.stderr, report)
	case "table":
		fmt.Fprintln(app.stderr, stats.Table())
	}

	if _, err := io.WriteString(app.stdout, out); err != nil {
		return errors.NewIO("write", "stdout", err)
	}
	return nil
}
