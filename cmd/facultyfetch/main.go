package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/facultyfetch"
	"github.com/fwojciec/facultyfetch/dispatch"
	"github.com/fwojciec/facultyfetch/fs"
	ffhttp "github.com/fwojciec/facultyfetch/http"
	ffslog "github.com/fwojciec/facultyfetch/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Operator input. Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}

	// Set when kong prints help and asks to exit, wherever --help appears.
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("facultyfetch"),
		kong.Description("Look up faculties by name and report the size of each faculty's page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(cli.Verbose, stderr)

	// Load, parse and sort the record set once.
	var source facultyfetch.RecordSource = fs.NewRecordSource(cli.File, cli.Delimiter)
	source = ffslog.NewLoggingRecordSource(source, logger)

	records, err := source.LoadRecords(ctx)
	if err != nil {
		return err
	}

	var fetcher facultyfetch.Fetcher = ffhttp.NewFetcher(ffhttp.WithTimeout(cli.Timeout))
	fetcher = ffslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	dispatcher := &dispatch.Dispatcher{Fetcher: fetcher}
	if cli.RPS > 0 {
		dispatcher.RateLimiter = dispatch.NewDomainLimiter(cli.RPS)
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdin:      m.Stdin,
		Stdout:     stdout,
		Stderr:     stderr,
		Records:    records,
		Dispatcher: dispatcher,
	}

	cmd := &LookupCmd{}
	return cmd.Run(deps)
}

// newLogger returns a text logger on stderr tagged with a session id when
// verbose is set, and a logger that discards everything otherwise.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, nil)).With("session", uuid.NewString())
}
