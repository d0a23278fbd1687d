package report

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Placement locates an identified file inside a category view.
type Placement struct {
	Category string
	Name     string
	Source   string
	Size     int64
}

// Path is the slash-separated path of p relative to the view root.
func (p Placement) Path() string {
	return p.Category + "/" + p.Name
}

// Layout places every identified entry under its category. A file keeps its
// base name with the extension replaced by the detected one; clashing names
// get a numeric suffix. Unidentified entries and entries carrying an error
// are skipped.
func Layout(entries []Entry) []Placement {
	used := make(map[string]struct{}, len(entries))
	placements := make([]Placement, 0, len(entries))

	for _, e := range entries {
		if !e.Identified() || e.Error != "" {
			continue
		}

		base := filepath.Base(e.Path)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if stem == "" {
			stem = base
		}

		name := stem + "." + e.Extension
		for i := 1; ; i++ {
			if _, taken := used[e.Category+"/"+name]; !taken {
				break
			}
			name = fmt.Sprintf("%s_%d.%s", stem, i, e.Extension)
		}
		used[e.Category+"/"+name] = struct{}{}

		placements = append(placements, Placement{
			Category: e.Category,
			Name:     name,
			Source:   e.Path,
			Size:     e.Size,
		})
	}
	return placements
}
