// Package inner classifies the payload wrapped by single-stream compressors.
package inner

import (
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/ostafen/sniff/pkg/magic"
)

type decoder func(r io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoder{
	"gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	"zst": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
	"lz4": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	},
	"bz2": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(bzip2.NewReader(r)), nil
	},
}

// Supported reports whether the payload of outer can be inspected.
func Supported(outer magic.Type) bool {
	_, ok := decoders[outer.Extension()]
	return ok
}

// Classify decompresses at most limit bytes of r, which must be positioned
// at the start of a stream of type outer, and classifies them with m.
// ok is false when outer is not a supported compressor or the payload is
// not recognized.
func Classify(m *magic.Matcher, outer magic.Type, r io.Reader, limit int) (t magic.Type, ok bool, err error) {
	newDecoder, supported := decoders[outer.Extension()]
	if !supported {
		return magic.Type{}, false, nil
	}

	dec, err := newDecoder(r)
	if err != nil {
		return magic.Type{}, false, fmt.Errorf("%s: %w", outer.Extension(), err)
	}
	defer dec.Close()

	payload, err := magic.ReadPrefix(dec, limit)
	if err != nil {
		return magic.Type{}, false, fmt.Errorf("%s: %w", outer.Extension(), err)
	}

	t, ok = m.Classify(payload)
	return t, ok, nil
}
