//go:build !linux && !darwin
// +build !linux,!darwin

package mmap

import "errors"

var errUnsupported = errors.New("mmap is not supported on this platform")

type File struct {
	Data []byte
}

func Open(path string) (*File, error) {
	return nil, errUnsupported
}

func (mf *File) Close() error { return nil }
