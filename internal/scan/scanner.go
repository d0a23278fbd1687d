package scan

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/gobwas/glob"
	"github.com/zeebo/blake3"

	"github.com/ostafen/sniff/internal/fs"
	"github.com/ostafen/sniff/internal/index"
	"github.com/ostafen/sniff/internal/inner"
	"github.com/ostafen/sniff/internal/mmap"
	"github.com/ostafen/sniff/pkg/magic"
	"github.com/ostafen/sniff/pkg/pbar"
	"github.com/ostafen/sniff/pkg/report"
)

type Scanner struct {
	matcher *magic.Matcher
	opts    Options
	include []glob.Glob
	cache   *prefixCache
	logger  *slog.Logger
}

type Stats struct {
	Files      int
	Identified int
	Failed     int
	Sniffed    int64
	CacheHits  int
	IndexHits  int
}

// New creates a scanner classifying files with m.
func New(m *magic.Matcher, opts Options) (*Scanner, error) {
	opts = opts.withDefaults()

	include := make([]glob.Glob, 0, len(opts.Include))
	for _, pattern := range opts.Include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		include = append(include, g)
	}

	return &Scanner{
		matcher: m,
		opts:    opts,
		include: include,
		cache:   newPrefixCache(),
		logger:  opts.Logger,
	}, nil
}

func (s *Scanner) included(rel string) bool {
	if len(s.include) == 0 {
		return true
	}

	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, g := range s.include {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// Collect walks root and returns the regular files accepted by the include
// patterns, in lexical order.
func (s *Scanner) Collect(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Warn("skipping unreadable path", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if s.included(rel) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

type result struct {
	entry   report.Entry
	sniffed int64
	fromIdx bool
}

// Run classifies every file under root and writes one entry per file to out.
// Entries are written in completion order. When progress is non-nil, a
// progress line is rendered to it.
func (s *Scanner) Run(ctx context.Context, root string, out report.Writer, progress io.Writer) (Stats, error) {
	paths, err := s.Collect(ctx, root)
	if err != nil {
		return Stats{}, err
	}

	var bar *pbar.ProgressBarState
	if progress != nil {
		bar = pbar.NewProgressBarState(progress, len(paths))
		defer bar.Finish()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for range s.opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res := s.classify(ctx, path)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var stats Stats
	for res := range results {
		stats.Files++
		stats.Sniffed += res.sniffed
		if res.fromIdx {
			stats.IndexHits++
		}
		switch {
		case res.entry.Error != "":
			stats.Failed++
		case res.entry.Identified():
			stats.Identified++
		}

		if bar != nil {
			bar.Add(res.entry.Identified(), res.sniffed)
		}

		if err := out.WriteEntry(res.entry); err != nil {
			cancel()
			for range results {
			}
			return stats, fmt.Errorf("failed to write report entry: %w", err)
		}
	}
	stats.CacheHits = s.cache.Hits()

	return stats, ctx.Err()
}

// ClassifyPath classifies a single file and returns its report entry.
// Failures are recorded in the entry rather than returned.
func (s *Scanner) ClassifyPath(ctx context.Context, path string) report.Entry {
	return s.classify(ctx, path).entry
}

func (s *Scanner) classify(ctx context.Context, path string) result {
	entry := report.Entry{Path: path}

	f, err := fs.Open(path)
	if err != nil {
		entry.Error = err.Error()
		s.logger.Debug("unable to open file", "path", path, "err", err)
		return result{entry: entry}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		entry.Error = err.Error()
		return result{entry: entry}
	}
	entry.Size = info.Size()

	if s.opts.Index != nil {
		rec, found, err := s.opts.Index.Lookup(ctx, path, info.Size(), info.ModTime())
		switch {
		case err != nil:
			s.logger.Warn("index lookup failed", "path", path, "err", err)
		case found && rec.Covers(s.opts.Hash, s.opts.Inner):
			return result{entry: rec.Entry, fromIdx: true}
		}
	}

	prefix, err := magic.ReadPrefix(f, s.opts.ReadLimit)
	if err != nil {
		entry.Error = err.Error()
		s.logger.Debug("unable to read file", "path", path, "err", err)
		return result{entry: entry}
	}

	res := result{sniffed: int64(len(prefix))}

	typ, found := s.cache.classify(s.matcher, prefix)
	if found {
		entry.Category = typ.Category().String()
		entry.MIME = typ.MIME()
		entry.Extension = typ.Extension()

		if s.opts.Inner && inner.Supported(typ) {
			if in, err := s.classifyInner(f, typ); err != nil {
				s.logger.Debug("unable to inspect payload", "path", path, "err", err)
			} else {
				entry.Inner = in
			}
		}
	}

	if s.opts.Hash {
		digest, err := digest(f, path, info.Size())
		if err != nil {
			entry.Error = err.Error()
			res.entry = entry
			return res
		}
		entry.Digest = digest
	}

	if s.opts.Index != nil {
		rec := index.Record{Entry: entry, InnerChecked: s.opts.Inner}
		if err := s.opts.Index.Store(ctx, rec, info.ModTime()); err != nil {
			s.logger.Warn("index store failed", "path", path, "err", err)
		}
	}

	s.logger.Debug("classified", "path", path, "mime", entry.MIME, "ext", entry.Extension)

	res.entry = entry
	return res
}

func (s *Scanner) classifyInner(f io.ReadSeeker, outer magic.Type) (*report.Inner, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	typ, found, err := inner.Classify(s.matcher, outer, f, s.opts.ReadLimit)
	if err != nil || !found {
		return nil, err
	}
	return &report.Inner{
		Category:  typ.Category().String(),
		MIME:      typ.MIME(),
		Extension: typ.Extension(),
	}, nil
}

// Files at least this large are hashed through a memory mapping.
const mmapThreshold = 1 << 20

func digest(f io.ReadSeeker, path string, size int64) (string, error) {
	h := blake3.New()

	if size >= mmapThreshold {
		if mf, err := mmap.Open(path); err == nil {
			defer mf.Close()
			h.Write(mf.Data)
			return hex.EncodeToString(h.Sum(nil)), nil
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
