//go:build linux
// +build linux

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

package fuse

import (
	"context"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	sniffs "github.com/ostafen/sniff/internal/fs"
	"github.com/ostafen/sniff/pkg/report"
)

// CategoryFS exposes the identified files of a report as a read-only tree
// with one directory per category.
type CategoryFS struct {
	mtx        sync.RWMutex
	categories map[string]map[string]report.Placement

	mountTime time.Time
}

func NewCategoryFS(placements []report.Placement) *CategoryFS {
	categories := make(map[string]map[string]report.Placement)
	for _, p := range placements {
		dir, ok := categories[p.Category]
		if !ok {
			dir = make(map[string]report.Placement)
			categories[p.Category] = dir
		}
		dir[p.Name] = p
	}
	return &CategoryFS{
		categories: categories,
		mountTime:  time.Now(),
	}
}

func (cfs *CategoryFS) Root() (fs.Node, error) {
	return &RootDir{fs: cfs}, nil
}

// RootDir implements both fs.Node and fs.HandleReadDirAller
type RootDir struct {
	fs *CategoryFS
}

func (d *RootDir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	a.Mtime = d.fs.mountTime
	return nil
}

func (d *RootDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	d.fs.mtx.RLock()
	defer d.fs.mtx.RUnlock()

	if entries, ok := d.fs.categories[name]; ok {
		return &CategoryDir{fs: d.fs, entries: entries}, nil
	}
	return nil, fuse.ENOENT
}

func (d *RootDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	d.fs.mtx.RLock()
	defer d.fs.mtx.RUnlock()

	names := make([]string, 0, len(d.fs.categories))
	for name := range d.fs.categories {
		names = append(names, name)
	}
	return dirents(names, fuse.DT_Dir), nil
}

// CategoryDir lists the files of a single category.
type CategoryDir struct {
	fs      *CategoryFS
	entries map[string]report.Placement
}

func (d *CategoryDir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	a.Mtime = d.fs.mountTime
	return nil
}

func (d *CategoryDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	d.fs.mtx.RLock()
	defer d.fs.mtx.RUnlock()

	if p, ok := d.entries[name]; ok {
		return &File{source: p.Source, size: uint64(p.Size), mtime: d.fs.mountTime}, nil
	}
	return nil, fuse.ENOENT
}

func (d *CategoryDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	d.fs.mtx.RLock()
	defer d.fs.mtx.RUnlock()

	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	return dirents(names, fuse.DT_File), nil
}

func dirents(names []string, typ fuse.DirentType) []fuse.Dirent {
	sort.Strings(names)

	dirEntries := make([]fuse.Dirent, len(names))
	for i, name := range names {
		dirEntries[i] = fuse.Dirent{
			Inode: uint64(i + 1),
			Name:  name,
			Type:  typ,
		}
	}
	return dirEntries
}

// File implements both fs.Node and fs.HandleReader by reading through to the
// original file.
type File struct {
	source string
	size   uint64
	mtime  time.Time
}

func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = 0444
	a.Size = f.size
	a.Mtime = f.mtime
	return nil
}

func (f *File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	size := int(req.Size)
	offset := req.Offset

	if offset >= int64(f.size) {
		// Trying to read past EOF
		resp.Data = []byte{}
		return nil
	}

	// Clamp size if reading near EOF
	if offset+int64(size) > int64(f.size) {
		size = int(int64(f.size) - offset)
	}

	r, err := sniffs.Open(f.source)
	if err != nil {
		return err
	}
	defer r.Close()

	buf := make([]byte, size)

	n, err := r.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return err
	}

	resp.Data = buf[:n]
	return nil
}
