// Command example is a sample plugin registering a custom type. Build it with
//
//	go build -buildmode=plugin -o example.so ./plugins
package main

import (
	"bytes"

	"github.com/ostafen/sniff/pkg/magic"
)

var signature = []byte{0xDE, 0xAD, 0xBE, 0xEF}

func match(buf []byte) bool {
	return bytes.HasPrefix(buf, signature)
}

// Register adds the example type to m.
func Register(m *magic.Matcher) error {
	m.AddType(magic.NewPrefixType(magic.Custom, "application/x-deadbeef", "deadbeef", match, len(signature)))
	return nil
}

func main() {}
