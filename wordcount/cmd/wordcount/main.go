package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"go.lepak.sg/wordfreq/counter"
	"go.lepak.sg/wordfreq/wordcount"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultPath = "sample.txt"
	sampleText  = "Hello world! This is a test. Hello world, again."
)

// errMissing is returned by count when at least one file did not exist.
// Those files have already been reported on stderr.
var errMissing = errors.New("missing files")

// env is bound into every command's Run method.
type env struct {
	ctx    context.Context
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

type cli struct {
	Verbose bool `short:"v" help:"Log debug diagnostics to stderr."`

	Count  countCmd  `cmd:"" default:"withargs" help:"Count words in text files (the default command)."`
	Sample sampleCmd `cmd:"" help:"Write a small sample text file."`
}

type countCmd struct {
	Paths []string `arg:"" optional:"" help:"Files to count. Defaults to ${default_path}."`

	Top      int    `short:"n" help:"Only print the N most frequent words. 0 prints every word in first-seen order."`
	Alpha    bool   `short:"a" help:"Print words in alphabetical order."`
	Encoding string `short:"e" default:"${default_encoding}" help:"Source encoding: ${encodings}."`
	Jobs     int    `short:"j" default:"4" help:"Files to count at once. 0 counts them all at once."`
	PerFile  bool   `help:"Print the counts of each file instead of the combined counts."`
}

func (c *countCmd) Run(e *env) error {
	paths := c.Paths
	if len(paths) == 0 {
		paths = []string{defaultPath}
	}

	results, err := wordcount.CountFiles(e.ctx, paths, c.Jobs,
		wordcount.WithLogger(e.log),
		wordcount.WithEncoding(c.Encoding),
	)
	if err != nil {
		return err
	}

	missing := 0
	for i, freq := range results {
		if freq == nil {
			missing++
			fmt.Fprintf(e.stderr, "file not found: %s\n", paths[i])
		}
	}

	if c.PerFile {
		for i, freq := range results {
			if freq != nil {
				c.print(e.stdout, "--- Word Counts: "+paths[i]+" ---", freq)
			}
		}
	} else {
		c.print(e.stdout, "--- Word Counts ---", wordcount.Merge(results))
	}

	if missing > 0 {
		return fmt.Errorf("%w: %d of %d", errMissing, missing, len(paths))
	}

	return nil
}

// print writes one word per line under header. Nothing is written
// for a table without words.
func (c *countCmd) print(w io.Writer, header string, freq *wordcount.Frequencies) {
	if freq.Len() == 0 {
		return
	}

	var entries []counter.Entry[string]
	if c.Top > 0 {
		entries = counter.TopK(freq, c.Top)
	} else {
		entries = freq.Entries()
	}

	if c.Alpha {
		entries = counter.Sorted(entries, func(a, b counter.Entry[string]) bool {
			return a.Element < b.Element
		})
	}

	fmt.Fprintln(w, header)
	for _, en := range entries {
		fmt.Fprintf(w, "%s\t%d\n", en.Element, en.Count)
	}
}

type sampleCmd struct {
	Path string `arg:"" optional:"" default:"${default_path}" help:"Where to write the sample."`
}

func (s *sampleCmd) Run(e *env) error {
	if err := os.WriteFile(s.Path, []byte(sampleText+"\n"), 0o644); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}

	e.log.Debug("sample written", zap.String("path", s.Path))
	fmt.Fprintf(e.stdout, "wrote %s\n", s.Path)

	return nil
}

func newParser(c *cli, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("wordcount"),
		kong.Description("Count how often each word occurs in text files."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"default_path":     defaultPath,
			"default_encoding": wordcount.DefaultEncoding,
			"encodings":        strings.Join(wordcount.Encodings, ", "),
		},
	)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// missing files are already reported by the count command
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return cfg.Build()
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errMissing):
		return 1
	default:
		return 2
	}
}

func main() {
	var c cli

	parser, err := newParser(&c, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	log, err := newLogger(c.Verbose)
	parser.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err = kctx.Run(&env{
		ctx:    ctx,
		log:    log,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
	if err != nil && !errors.Is(err, errMissing) {
		fmt.Fprintf(os.Stderr, "wordcount: %v\n", err)
	}

	stop()
	_ = log.Sync()
	os.Exit(exitCode(err))
}
