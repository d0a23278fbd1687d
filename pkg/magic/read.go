package magic

import (
	"errors"
	"io"
)

// DefaultReadLimit is the prefix size read when classifying files.
const DefaultReadLimit = 8192

// Larger limits grow the buffer as data arrives instead of allocating it
// upfront.
const maxPreallocated = 64 * 1024

// NewStreamPredicate adapts a buffer predicate to readers. It reads up to
// size bytes; a shorter source is not an error and the predicate simply
// sees fewer bytes.
func NewStreamPredicate(match Predicate, size int) StreamPredicate {
	return func(r io.Reader) (bool, error) {
		buf, err := ReadPrefix(r, size)
		if err != nil {
			return false, err
		}
		return match(buf), nil
	}
}

// ReadPrefix reads at most limit bytes from r. Reaching the end of r early
// is not reported as an error.
func ReadPrefix(r io.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}

	if limit > maxPreallocated {
		return io.ReadAll(io.LimitReader(r, int64(limit)))
	}

	buf := make([]byte, limit)
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	return buf[:n], err
}
