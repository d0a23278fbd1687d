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
package reader

import (
	"errors"
	"fmt"
	"io"
)

var ErrSeekOutOfRange = errors.New("seek outside recorded window")

// Rewinder makes a forward-only reader, such as a pipe, seekable within its
// first limit bytes. Bytes are recorded as they are read; once the stream
// moves past the recorded window, the skipped prefix is gone and seeking
// backwards fails with ErrSeekOutOfRange.
type Rewinder struct {
	src      io.Reader
	buf      []byte // recorded prefix of src
	limit    int
	consumed int64 // bytes read from src
	off      int64 // current read position
}

func NewRewinder(src io.Reader, limit int) *Rewinder {
	return &Rewinder{
		src:   src,
		buf:   make([]byte, 0, min(limit, 64*1024)),
		limit: limit,
	}
}

// complete reports whether every byte read from src has been recorded.
func (r *Rewinder) complete() bool {
	return r.consumed == int64(len(r.buf))
}

// maxEmptyReads is how many consecutive (0, nil) reads from the source are
// tolerated before Read gives up with io.ErrNoProgress.
const maxEmptyReads = 100

func (r *Rewinder) Read(p []byte) (int, error) {
	read, empty := 0, 0
	for read < len(p) {
		if r.off < int64(len(r.buf)) {
			n := copy(p[read:], r.buf[r.off:])
			r.off += int64(n)
			read += n
			continue
		}

		n, err := r.src.Read(p[read:])
		r.record(p[read : read+n])
		r.off += int64(n)
		read += n
		if errors.Is(err, io.EOF) && read > 0 {
			return read, nil
		}
		if err != nil {
			return read, err
		}
		if n > 0 {
			empty = 0
			continue
		}
		if read > 0 {
			return read, nil
		}
		if empty++; empty >= maxEmptyReads {
			return 0, io.ErrNoProgress
		}
	}
	return read, nil
}

func (r *Rewinder) record(p []byte) {
	if r.complete() {
		room := r.limit - len(r.buf)
		r.buf = append(r.buf, p[:min(room, len(p))]...)
	}
	r.consumed += int64(len(p))
}

func (r *Rewinder) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += r.off
	default:
		return -1, fmt.Errorf("Rewinder.Seek: invalid whence: %d", whence)
	}

	if offset < 0 {
		return -1, fmt.Errorf("Rewinder.Seek: negative position")
	}

	switch {
	case offset == r.off:
	case offset <= r.consumed && r.complete():
		r.off = offset
	case offset > r.consumed && r.complete() && offset <= int64(r.limit):
		if err := r.forward(offset); err != nil {
			return r.off, err
		}
	default:
		return r.off, fmt.Errorf("%w: %d (recorded %d bytes)", ErrSeekOutOfRange, offset, len(r.buf))
	}
	return r.off, nil
}

// forward reads and records src up to offset.
func (r *Rewinder) forward(offset int64) error {
	r.off = r.consumed

	chunk := make([]byte, 4096)
	for empty := 0; r.consumed < offset; {
		n, err := r.src.Read(chunk[:min(int64(len(chunk)), offset-r.consumed)])
		r.record(chunk[:n])
		r.off = r.consumed
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		if n > 0 {
			empty = 0
		} else if empty++; empty >= maxEmptyReads {
			return io.ErrNoProgress
		}
	}
	return nil
}

// Recorded returns the bytes recorded so far.
func (r *Rewinder) Recorded() []byte {
	return r.buf
}
