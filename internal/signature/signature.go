// Package signature compiles user-supplied signature definitions into
// magic types. Definitions are authored as YAML or as JSONC (JSON with
// comments and trailing commas):
//
//	signatures:
//	  - mime: application/x-acme
//	    ext: acme
//	    category: archive   # optional, defaults to custom
//	    patterns:
//	      - offset: 0
//	        hex: "41434d45"
//	      - offset: 8
//	        text: "v2"
//
// A definition matches when every one of its patterns matches.
package signature

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/ostafen/sniff/pkg/magic"
)

var ErrInvalidSignature = errors.New("invalid signature")

// MaxPatternEnd bounds how far into a file a pattern may reach.
const MaxPatternEnd = 64 * 1024

type Pattern struct {
	Offset int    `yaml:"offset" json:"offset"`
	Hex    string `yaml:"hex,omitempty" json:"hex,omitempty"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
}

type Definition struct {
	MIME     string    `yaml:"mime" json:"mime"`
	Ext      string    `yaml:"ext" json:"ext"`
	Category string    `yaml:"category,omitempty" json:"category,omitempty"`
	Patterns []Pattern `yaml:"patterns" json:"patterns"`
}

type File struct {
	Signatures []Definition `yaml:"signatures" json:"signatures"`
}

// ParseYAML decodes a YAML signature file.
func ParseYAML(data []byte) ([]Definition, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing signatures: %w", err)
	}
	return f.Signatures, nil
}

// ParseJSONC decodes a JSON signature file, tolerating comments and
// trailing commas.
func ParseJSONC(data []byte) ([]Definition, error) {
	var f File
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("parsing signatures: %w", err)
	}
	return f.Signatures, nil
}

// ReadFile reads and parses a signature file, choosing the decoder from the
// file extension. Files ending in .json or .jsonc are read as JSONC,
// everything else as YAML.
func ReadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var defs []Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		defs, err = ParseJSONC(data)
	default:
		defs, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

type compiledPattern struct {
	offset int
	value  []byte
}

// Compile turns a definition into a type whose predicate requires every
// pattern to be present at its offset.
func Compile(def Definition) (magic.Type, error) {
	if def.MIME == "" || def.Ext == "" {
		return magic.Type{}, fmt.Errorf("%w: mime and ext are required", ErrInvalidSignature)
	}
	if len(def.Patterns) == 0 {
		return magic.Type{}, fmt.Errorf("%w: %s has no patterns", ErrInvalidSignature, def.Ext)
	}

	category := magic.Custom
	if def.Category != "" {
		c, err := magic.ParseCategory(strings.ToLower(def.Category))
		if err != nil {
			return magic.Type{}, fmt.Errorf("%w: %s: %w", ErrInvalidSignature, def.Ext, err)
		}
		category = c
	}

	patterns := make([]compiledPattern, 0, len(def.Patterns))
	readSize := 0
	for i, p := range def.Patterns {
		cp, err := compilePattern(p)
		if err != nil {
			return magic.Type{}, fmt.Errorf("%w: %s: pattern %d: %w", ErrInvalidSignature, def.Ext, i, err)
		}
		patterns = append(patterns, cp)
		readSize = max(readSize, cp.offset+len(cp.value))
	}

	match := func(buf []byte) bool {
		for _, p := range patterns {
			end := p.offset + len(p.value)
			if len(buf) < end || !bytes.Equal(buf[p.offset:end], p.value) {
				return false
			}
		}
		return true
	}
	return magic.NewPrefixType(category, def.MIME, def.Ext, match, readSize), nil
}

func compilePattern(p Pattern) (compiledPattern, error) {
	if p.Offset < 0 {
		return compiledPattern{}, fmt.Errorf("negative offset %d", p.Offset)
	}

	var value []byte
	switch {
	case p.Hex != "" && p.Text != "":
		return compiledPattern{}, errors.New("hex and text are mutually exclusive")
	case p.Hex != "":
		v, err := hex.DecodeString(strings.ReplaceAll(p.Hex, " ", ""))
		if err != nil {
			return compiledPattern{}, err
		}
		value = v
	case p.Text != "":
		value = []byte(p.Text)
	default:
		return compiledPattern{}, errors.New("empty pattern")
	}
	if p.Offset > MaxPatternEnd-len(value) {
		return compiledPattern{}, fmt.Errorf("pattern ends past byte %d", MaxPatternEnd)
	}
	return compiledPattern{offset: p.Offset, value: value}, nil
}

// Register compiles defs and adds them to m in order. Nothing is registered
// if any definition is invalid.
func Register(m *magic.Matcher, defs []Definition) error {
	types := make([]magic.Type, 0, len(defs))
	for _, def := range defs {
		t, err := Compile(def)
		if err != nil {
			return err
		}
		types = append(types, t)
	}

	for _, t := range types {
		m.AddType(t)
	}
	return nil
}

// Load reads the signature file at path and registers its definitions.
func Load(m *magic.Matcher, path string) (int, error) {
	defs, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := Register(m, defs); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return len(defs), nil
}
