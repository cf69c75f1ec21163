package wordcount

import (
	"context"
	"errors"

	"go.lepak.sg/wordfreq/counter"
	"golang.org/x/sync/errgroup"
)

// CountFiles counts the words of every path, running at most limit
// counters at once. Pass limit <= 0 to run them all at once.
//
// result[i] holds the frequencies of paths[i]. A missing file leaves
// its entry nil and does not fail the call. Any other error stops
// new files from being counted and is returned once all running
// counters have exited.
func CountFiles(
	ctx context.Context, paths []string, limit int, opts ...Option,
) (result []*Frequencies, err error) {
	result = make([]*Frequencies, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, path := range paths {
		// Go blocks while the group is at its limit,
		// so check for cancellation before each start
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			freq, err := New(path, opts...).CountWords()
			if errors.Is(err, ErrFileNotFound) {
				return nil
			} else if err != nil {
				return err
			}

			// each goroutine owns its own slot
			result[i] = freq
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		return nil, err
	}

	// egCtx is always done after Wait; only the caller's ctx matters
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Merge sums the tables in order, skipping nil entries.
// The result is never nil.
func Merge(tables []*Frequencies) *Frequencies {
	sum := counter.NewTable[string]()

	for _, t := range tables {
		if t != nil {
			sum = sum.Merge(t)
		}
	}

	return sum
}
