// Package wordcount counts how often each word occurs in a text file.
//
// Text is normalized before counting: it is composed to NFC,
// lowercased, and stripped of every rune that is neither a word rune
// (see IsWordRune) nor whitespace. The remainder is split on runs of
// whitespace and each token is counted.
//
// A missing file is not a failure of the counter: CountWords returns
// a nil table together with an error matching ErrFileNotFound, so that
// callers can tell a missing file apart from an empty one (which
// yields an empty, non-nil table) and from any other I/O error.
package wordcount

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.lepak.sg/wordfreq/counter"
	"go.uber.org/zap"
)

var (
	// ErrFileNotFound is returned with a nil table when the source
	// file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrDecode is returned when the source file is not valid
	// in the configured encoding.
	ErrDecode = errors.New("cannot decode text")

	// ErrUnknownEncoding is returned when the configured encoding
	// is not one of Encodings.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Frequencies maps each word to the number of times it occurs,
// in the order the words were first seen.
type Frequencies = counter.Table[string]

// WordCounter counts the words of the file at a fixed path.
// It holds no state between calls, so CountWords may be called
// any number of times, including from several goroutines.
type WordCounter struct {
	path     string
	encoding string
	log      *zap.Logger
}

// Option configures a WordCounter.
type Option func(*WordCounter)

// WithLogger sets the logger used for diagnostics.
// A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(wc *WordCounter) {
		if log == nil {
			log = zap.NewNop()
		}
		wc.log = log
	}
}

// WithEncoding sets the encoding of the source file.
// The name is checked when counting, not here.
func WithEncoding(name string) Option {
	return func(wc *WordCounter) {
		wc.encoding = name
	}
}

// New returns a WordCounter for the file at path. The file is not
// touched until CountWords is called.
func New(path string, opts ...Option) *WordCounter {
	wc := &WordCounter{
		path:     path,
		encoding: DefaultEncoding,
		log:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(wc)
	}

	wc.log = wc.log.With(zap.String("path", path))
	wc.log.Debug("word counter initialized", zap.String("encoding", wc.encoding))

	return wc
}

// Path returns the path the counter reads from.
func (wc *WordCounter) Path() string {
	return wc.path
}

// CountWords reads the whole file and returns its word frequencies.
//
// If the file does not exist, the table is nil and the error matches
// ErrFileNotFound. Every other failure to read or decode the file is
// returned as an error that does not match ErrFileNotFound.
// Each call builds a new table; no partial result is ever returned.
func (wc *WordCounter) CountWords() (*Frequencies, error) {
	data, err := os.ReadFile(wc.path)
	if errors.Is(err, fs.ErrNotExist) {
		wc.log.Warn("file not found")
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, wc.path)
	} else if err != nil {
		return nil, fmt.Errorf("wordcount: read %s: %w", wc.path, err)
	}

	text, err := decode(data, wc.encoding)
	if err != nil {
		return nil, fmt.Errorf("wordcount: %s: %w", wc.path, err)
	}

	freq := Count(text)

	wc.log.Debug("word counting complete",
		zap.Int("words", freq.Total()),
		zap.Int("distinct", freq.Len()),
	)

	return freq, nil
}
