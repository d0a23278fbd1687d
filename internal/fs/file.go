// Package fs opens files for sniffing with platform-specific hints.
package fs

import (
	"io"
	"os"
)

type File interface {
	io.ReadSeekCloser
	io.ReaderAt
	Stat() (os.FileInfo, error)
}
