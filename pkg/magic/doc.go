// Package magic detects file types from their leading bytes.
//
// A Matcher holds an ordered list of types: user supplied ones first, then
// the built-in registry. Inputs are classified either from an in-memory
// prefix (Classify) or from a seekable stream (ClassifyReader), which is
// rewound between attempts. The package level functions use a shared
// Matcher without custom types.
//
//	buf, _ := os.ReadFile("photo")
//	if t, ok := magic.Classify(buf); ok {
//		fmt.Println(t.MIME(), t.Extension())
//	}
package magic
