package magic

import "io"

// Predicate reports whether a byte prefix carries a signature.
type Predicate func(buf []byte) bool

// StreamPredicate is the streaming counterpart of Predicate. It may consume
// any amount of the reader.
type StreamPredicate func(r io.Reader) (bool, error)

// Type describes a detectable file type. Types are immutable values; two
// types are equal when category, media type and extension agree.
type Type struct {
	category    Category
	mime        string
	ext         string
	match       Predicate
	matchStream StreamPredicate
	readSize    int
}

// NewType builds a type from its predicates. stream may be nil, in which
// case the type is skipped by the streaming path.
func NewType(category Category, mime, ext string, match Predicate, stream StreamPredicate) Type {
	return Type{
		category:    category,
		mime:        mime,
		ext:         ext,
		match:       match,
		matchStream: stream,
	}
}

// NewPrefixType builds a type whose streaming predicate reads up to
// readSize bytes and applies match to them.
func NewPrefixType(category Category, mime, ext string, match Predicate, readSize int) Type {
	t := NewType(category, mime, ext, match, NewStreamPredicate(match, readSize))
	t.readSize = readSize
	return t
}

func (t Type) Category() Category { return t.category }

// MIME returns the media type, e.g. "image/jpeg".
func (t Type) MIME() string { return t.mime }

// Extension returns the canonical extension without the leading dot.
func (t Type) Extension() string { return t.ext }

// ReadSize is the number of bytes the streaming predicate reads, or 0 when
// unknown.
func (t Type) ReadSize() int { return t.readSize }

func (t Type) SupportsReader() bool { return t.matchStream != nil }

func (t Type) Match(buf []byte) bool {
	return t.match != nil && t.match(buf)
}

func (t Type) MatchReader(r io.Reader) (bool, error) {
	if t.matchStream == nil {
		return false, nil
	}
	return t.matchStream(r)
}

func (t Type) Equal(other Type) bool {
	return t.category == other.category && t.mime == other.mime && t.ext == other.ext
}

func (t Type) String() string { return t.mime }
