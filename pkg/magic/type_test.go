package magic_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
	"testing/iotest"

	"github.com/ostafen/sniff/pkg/magic"
	"github.com/stretchr/testify/require"
)

func TestTypeEqualIgnoresPredicates(t *testing.T) {
	a := magic.NewType(magic.Custom, "custom/foo", "foo", func([]byte) bool { return true }, nil)
	b := magic.NewPrefixType(magic.Custom, "custom/foo", "foo", func([]byte) bool { return false }, 4)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(magic.NewType(magic.Image, "custom/foo", "foo", nil, nil)))
	require.False(t, a.Equal(magic.NewType(magic.Custom, "custom/bar", "foo", nil, nil)))
	require.False(t, a.Equal(magic.NewType(magic.Custom, "custom/foo", "bar", nil, nil)))

	require.False(t, a.SupportsReader())
	require.True(t, b.SupportsReader())
	require.Equal(t, 4, b.ReadSize())
	require.Equal(t, 0, a.ReadSize())
}

func TestTypeWithoutStreamPredicate(t *testing.T) {
	typ := magic.NewType(magic.Custom, "custom/foo", "foo", nil, nil)

	ok, err := typ.MatchReader(bytes.NewReader([]byte("foo")))
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, typ.Match([]byte("foo")))
}

func TestStreamPredicateShortInput(t *testing.T) {
	var got []byte
	pred := magic.NewStreamPredicate(func(buf []byte) bool {
		got = bytes.Clone(buf)
		return true
	}, 16)

	ok, err := pred(iotest.OneByteReader(bytes.NewReader([]byte("abc"))))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("abc"), got)
}

func TestStreamPredicateReadError(t *testing.T) {
	errRead := errors.New("read failed")
	pred := magic.NewStreamPredicate(func([]byte) bool { return true }, 16)

	ok, err := pred(iotest.ErrReader(errRead))
	require.ErrorIs(t, err, errRead)
	require.False(t, ok)
}

func TestReadPrefix(t *testing.T) {
	buf, err := magic.ReadPrefix(bytes.NewReader([]byte("0123456789")), 4)
	require.NoError(t, err)
	require.Equal(t, []byte("0123"), buf)

	buf, err = magic.ReadPrefix(bytes.NewReader(nil), 4)
	require.NoError(t, err)
	require.Empty(t, buf)

	buf, err = magic.ReadPrefix(io.MultiReader(), 0)
	require.NoError(t, err)
	require.Empty(t, buf)
}

func TestReadPrefixHugeLimit(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 100*1024)

	buf, err := magic.ReadPrefix(bytes.NewReader(data), math.MaxInt)
	require.NoError(t, err)
	require.Equal(t, data, buf)

	buf, err = magic.ReadPrefix(bytes.NewReader(data), 70*1024)
	require.NoError(t, err)
	require.Len(t, buf, 70*1024)

	_, err = magic.ReadPrefix(iotest.ErrReader(errors.New("broken")), math.MaxInt)
	require.Error(t, err)

	far := magic.NewPrefixType(magic.Custom, "a/far", "far", func(buf []byte) bool { return len(buf) > 1<<30 }, math.MaxInt)
	m := magic.New()
	m.AddType(far)

	got, ok, err := m.ClassifyReader(bytes.NewReader([]byte("GIF89a")))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "gif", got.Extension())
}

func TestCategory(t *testing.T) {
	for _, c := range magic.Categories() {
		parsed, err := magic.ParseCategory(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	require.Equal(t, "image", magic.Image.String())

	_, err := magic.ParseCategory("spreadsheet")
	require.ErrorIs(t, err, magic.ErrUnknownCategory)
}
