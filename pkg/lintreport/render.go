package lintreport

import (
	"fmt"
	"io"
	"sort"
)

// Render writes the report to w in the requested mode. File and test
// names are rendered in sorted order so output is reproducible across
// runs.
func Render(w io.Writer, r *Report, mode Mode) error {
	switch mode {
	case Markdown:
		return renderMarkdown(w, r)
	case HTML:
		return renderHTML(w, r)
	default:
		return fmt.Errorf("unsupported output mode: %v", mode)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
