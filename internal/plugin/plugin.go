// Package plugin loads Go plugins that register custom types.
//
// A plugin is a package main built with -buildmode=plugin exporting
//
//	func Register(m *magic.Matcher) error
package plugin

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"plugin"
	"strings"

	"github.com/ostafen/sniff/pkg/magic"
)

const RegisterSymbol = "Register"

// List expands plugin paths: if path is a file, add it directly;
// if path is a directory, scan it recursively for .so files.
func List(plugins []string) ([]string, error) {
	var pluginPaths []string

	for _, p := range plugins {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !strings.HasSuffix(info.Name(), ".so") {
				return nil, fmt.Errorf("plugin file %s does not have .so extension", info.Name())
			}
			pluginPaths = append(pluginPaths, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".so") {
				pluginPaths = append(pluginPaths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return pluginPaths, nil
}

// Load opens each plugin and calls its Register function with m.
func Load(m *magic.Matcher, paths ...string) error {
	for _, path := range paths {
		if err := load(m, path); err != nil {
			return fmt.Errorf("failed to load plugin %s: %w", path, err)
		}
	}
	return nil
}

func load(m *magic.Matcher, path string) error {
	p, err := plugin.Open(path)
	if err != nil {
		return err
	}

	sym, err := p.Lookup(RegisterSymbol)
	if err != nil {
		return err
	}

	register, ok := sym.(func(*magic.Matcher) error)
	if !ok {
		return fmt.Errorf("symbol %s has type %T, want func(*magic.Matcher) error", RegisterSymbol, sym)
	}
	return register(m)
}
