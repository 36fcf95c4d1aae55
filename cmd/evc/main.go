// Command evc converts English text between regional spelling variants.
//
// Text is read from standard input and written to standard output; logs and
// statistics go to standard error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/EnglishVariant/internal/config"
	"github.com/FocuswithJustin/EnglishVariant/internal/logging"
)

const version = "0.4.0"

// CLI defines the command-line interface for evc.
type CLI struct {
	Globals

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert standard input (default command)"`
	Data    DataGroup  `cmd:"" help:"Inspect, verify and package the conversion tables"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// Globals are flags shared by every command. Each overrides the matching
// EVC_* environment variable.
type Globals struct {
	DataDir   string `name:"data-dir" help:"Directory holding crosswalk and exceptions CSV tables (default: embedded data)" type:"path"`
	DB        string `name:"db" help:"SQLite data pack built by 'evc data pack'; overrides --data-dir" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" help:"Log format: text or json"`
}

// App carries the resolved configuration and I/O streams into commands.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	data *dataSet
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	fmt.Fprintf(app.stdout, "evc version %s\n", version)
	return nil
}

type exitCode int

// run parses args, executes the selected command and returns the process
// exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if c, ok := r.(exitCode); ok {
				code = int(c)
				return
			}
			panic(r)
		}
	}()

	var cli CLI
	app := &App{stdin: stdin, stdout: stdout, stderr: stderr}
	parser, err := kong.New(&cli,
		kong.Name("evc"),
		kong.Description("English variant converter - spelling and word-choice conversion between en_US, en_GB, en_AU and en_CA"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Bind(app),
	)
	if err != nil {
		fmt.Fprintf(stderr, "evc: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	app.cfg = config.Load()
	app.cfg.Override(cli.DataDir, cli.DB, cli.LogLevel, cli.LogFormat)
	logging.InitLoggerWithWriter(stderr, logging.ParseLevel(app.cfg.LogLevel), logging.ParseFormat(app.cfg.LogFormat))
	app.ctx = logging.WithRunID(context.Background(), uuid.NewString())
	logging.LoggerFromContext(app.ctx).Debug("command_start", "command", kctx.Command(), "version", version)

	if err := kctx.Run(); err != nil {
		logging.ErrorContext(app.ctx, "command_failed", "command", kctx.Command(), "error", err.Error())
		fmt.Fprintf(stderr, "evc: error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
