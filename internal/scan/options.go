package scan

import (
	"log/slog"
	"time"

	"github.com/ostafen/sniff/internal/index"
	"github.com/ostafen/sniff/pkg/magic"
)

const (
	DefaultWorkers  = 4
	DefaultDebounce = 200 * time.Millisecond
)

type Options struct {
	Workers   int
	ReadLimit int
	Include   []string // glob patterns, matched against the relative path and the base name
	Hash      bool     // compute BLAKE3 digests
	Inner     bool     // classify the payload of compressed files
	Index     *index.Index
	Logger    *slog.Logger

	// Debounce is how long a watched file must stay quiet before it is
	// classified.
	Debounce time.Duration
}

func (o *Options) withDefaults() Options {
	opts := *o
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.ReadLimit <= 0 {
		opts.ReadLimit = magic.DefaultReadLimit
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}
