package magic

import (
	"io"
	"sync"
)

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
)

// shared returns the process wide matcher used by the package level
// functions. It never holds custom types.
func shared() *Matcher {
	defaultOnce.Do(func() {
		defaultMatcher = New()
	})
	return defaultMatcher
}

func Classify(buf []byte) (Type, bool) {
	return shared().Classify(buf)
}

func ClassifyReader(r io.ReadSeeker) (Type, bool, error) {
	return shared().ClassifyReader(r)
}

func ClassifyFile(path string) (Type, bool, error) {
	return shared().ClassifyFile(path)
}

func Is(buf []byte, ext string) bool         { return shared().Is(buf, ext) }
func IsMIME(buf []byte, mime string) bool    { return shared().IsMIME(buf, mime) }
func IsCategory(buf []byte, c Category) bool { return shared().IsCategory(buf, c) }
func IsReader(r io.ReadSeeker, ext string) (bool, error) {
	return shared().IsReader(r, ext)
}
func IsMIMEReader(r io.ReadSeeker, mime string) (bool, error) {
	return shared().IsMIMEReader(r, mime)
}
func IsCategoryReader(r io.ReadSeeker, c Category) (bool, error) {
	return shared().IsCategoryReader(r, c)
}

func IsApp(buf []byte) bool      { return shared().IsApp(buf) }
func IsArchive(buf []byte) bool  { return shared().IsArchive(buf) }
func IsAudio(buf []byte) bool    { return shared().IsAudio(buf) }
func IsBook(buf []byte) bool     { return shared().IsBook(buf) }
func IsDocument(buf []byte) bool { return shared().IsDocument(buf) }
func IsFont(buf []byte) bool     { return shared().IsFont(buf) }
func IsImage(buf []byte) bool    { return shared().IsImage(buf) }
func IsVideo(buf []byte) bool    { return shared().IsVideo(buf) }
func IsText(buf []byte) bool     { return shared().IsText(buf) }

func SupportsExtension(ext string) bool { return shared().SupportsExtension(ext) }
func SupportsMIME(mime string) bool     { return shared().SupportsMIME(mime) }

func TypeByExtension(ext string) (Type, bool) { return shared().TypeByExtension(ext) }
func TypeByMIME(mime string) (Type, bool)     { return shared().TypeByMIME(mime) }

func Types() []Type { return shared().Types() }
