// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package magic

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
)

// Matcher classifies inputs against its custom types, in insertion order,
// followed by the built-in registry. The first matching type wins.
//
// A Matcher is safe for concurrent use. Adding types while other goroutines
// classify is allowed: each classification works on the types registered
// when it started.
type Matcher struct {
	mu     sync.RWMutex
	custom []Type

	logger    *slog.Logger
	readLimit int
}

type Option func(*Matcher)

// WithLogger sets the logger used to report tolerated failures, such as a
// reader that cannot be rewound between attempts.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithReadLimit sets how many leading bytes ClassifyFile reads.
func WithReadLimit(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.readLimit = n
		}
	}
}

func New(opts ...Option) *Matcher {
	m := &Matcher{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		readLimit: DefaultReadLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers a Custom type. stream may be nil, in which case the type is
// only considered when classifying buffers.
func (m *Matcher) Add(mime, ext string, match Predicate, stream StreamPredicate) {
	m.AddType(NewType(Custom, mime, ext, match, stream))
}

// AddType registers a type of any category. No deduplication is performed.
func (m *Matcher) AddType(t Type) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.custom = append(m.custom, t)
}

// snapshot returns the custom types registered so far. The list is
// append-only, so the returned slice stays valid after the lock is released.
func (m *Matcher) snapshot() []Type {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.custom[:len(m.custom):len(m.custom)]
}

// each calls fn for every type in matching order until fn returns false.
func (m *Matcher) each(fn func(t Type) bool) {
	for _, t := range m.snapshot() {
		if !fn(t) {
			return
		}
	}
	for _, t := range builtins {
		if !fn(t) {
			return
		}
	}
}

// Types returns every type in matching order.
func (m *Matcher) Types() []Type {
	custom := m.snapshot()

	types := make([]Type, 0, len(custom)+len(builtins))
	types = append(types, custom...)
	return append(types, builtins...)
}

// Classify returns the first type matching buf. Empty input never matches.
func (m *Matcher) Classify(buf []byte) (Type, bool) {
	return m.find(buf, func(Type) bool { return true })
}

func (m *Matcher) find(buf []byte, filter func(Type) bool) (res Type, found bool) {
	if len(buf) == 0 {
		return Type{}, false
	}

	m.each(func(t Type) bool {
		if filter(t) && t.Match(buf) {
			res, found = t, true
			return false
		}
		return true
	})
	return res, found
}

// ClassifyReader returns the first type whose streaming predicate matches r.
// Types without a streaming predicate are skipped. After every failed
// attempt r is moved back to the offset it had on entry; a failing seek is
// logged and otherwise ignored, so later attempts may see a shifted stream.
// Read errors abort the classification.
func (m *Matcher) ClassifyReader(r io.ReadSeeker) (Type, bool, error) {
	return m.findReader(r, func(Type) bool { return true })
}

func (m *Matcher) findReader(r io.ReadSeeker, filter func(Type) bool) (res Type, found bool, err error) {
	start, serr := r.Seek(0, io.SeekCurrent)
	if serr != nil {
		m.logger.Debug("unable to get reader offset", "err", serr)
	}

	m.each(func(t Type) bool {
		if !t.SupportsReader() || !filter(t) {
			return true
		}

		found, err = t.MatchReader(r)
		if err != nil || found {
			res = t
			return false
		}

		if _, serr := r.Seek(start, io.SeekStart); serr != nil {
			m.logger.Debug("unable to rewind reader", "type", t.MIME(), "offset", start, "err", serr)
		}
		return true
	})

	if err != nil {
		return Type{}, false, err
	}
	return res, found, nil
}

// ClassifyFile classifies the leading bytes of the file at path, up to the
// configured read limit.
func (m *Matcher) ClassifyFile(path string) (Type, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Type{}, false, err
	}
	defer f.Close()

	buf, err := ReadPrefix(f, m.readLimit)
	if err != nil {
		return Type{}, false, err
	}
	t, ok := m.Classify(buf)
	return t, ok, nil
}

// Is reports whether buf matches a type with extension ext.
func (m *Matcher) Is(buf []byte, ext string) bool {
	_, ok := m.find(buf, func(t Type) bool { return t.ext == ext })
	return ok
}

// IsMIME reports whether buf matches a type with media type mime.
func (m *Matcher) IsMIME(buf []byte, mime string) bool {
	_, ok := m.find(buf, func(t Type) bool { return t.mime == mime })
	return ok
}

// IsCategory reports whether buf matches a type of category c.
func (m *Matcher) IsCategory(buf []byte, c Category) bool {
	_, ok := m.find(buf, func(t Type) bool { return t.category == c })
	return ok
}

func (m *Matcher) IsReader(r io.ReadSeeker, ext string) (bool, error) {
	_, ok, err := m.findReader(r, func(t Type) bool { return t.ext == ext })
	return ok, err
}

func (m *Matcher) IsMIMEReader(r io.ReadSeeker, mime string) (bool, error) {
	_, ok, err := m.findReader(r, func(t Type) bool { return t.mime == mime })
	return ok, err
}

func (m *Matcher) IsCategoryReader(r io.ReadSeeker, c Category) (bool, error) {
	_, ok, err := m.findReader(r, func(t Type) bool { return t.category == c })
	return ok, err
}

func (m *Matcher) IsApp(buf []byte) bool      { return m.IsCategory(buf, App) }
func (m *Matcher) IsArchive(buf []byte) bool  { return m.IsCategory(buf, Archive) }
func (m *Matcher) IsAudio(buf []byte) bool    { return m.IsCategory(buf, Audio) }
func (m *Matcher) IsBook(buf []byte) bool     { return m.IsCategory(buf, Book) }
func (m *Matcher) IsDocument(buf []byte) bool { return m.IsCategory(buf, Document) }
func (m *Matcher) IsFont(buf []byte) bool     { return m.IsCategory(buf, Font) }
func (m *Matcher) IsImage(buf []byte) bool    { return m.IsCategory(buf, Image) }
func (m *Matcher) IsVideo(buf []byte) bool    { return m.IsCategory(buf, Video) }
func (m *Matcher) IsText(buf []byte) bool     { return m.IsCategory(buf, Text) }
func (m *Matcher) IsCustom(buf []byte) bool   { return m.IsCategory(buf, Custom) }

// SupportsExtension reports whether some type has extension ext. The
// comparison is exact and case-sensitive.
func (m *Matcher) SupportsExtension(ext string) bool {
	_, ok := m.TypeByExtension(ext)
	return ok
}

func (m *Matcher) SupportsMIME(mime string) bool {
	_, ok := m.TypeByMIME(mime)
	return ok
}

// TypeByExtension returns the first type, in matching order, with
// extension ext.
func (m *Matcher) TypeByExtension(ext string) (Type, bool) {
	return m.lookup(func(t Type) bool { return t.ext == ext })
}

// TypeByMIME returns the first type, in matching order, with media type
// mime.
func (m *Matcher) TypeByMIME(mime string) (Type, bool) {
	return m.lookup(func(t Type) bool { return t.mime == mime })
}

func (m *Matcher) lookup(pred func(Type) bool) (Type, bool) {
	types := m.Types()
	if i := slices.IndexFunc(types, pred); i >= 0 {
		return types[i], true
	}
	return Type{}, false
}
