package lintreport

import (
	"fmt"
	"io"
	"strings"
)

// Emoji-style glyphs understood by GitHub comment rendering.
const (
	mdPassGlyph = ":white_check_mark:"
	mdFailGlyph = ":no_entry:"
)

// renderMarkdown writes the report as a flat bullet list: one bullet per
// file, indented bullets per test, and a further level per diagnostic of
// a failing test.
func renderMarkdown(w io.Writer, r *Report) error {
	var out []string
	for _, fn := range sortedKeys(r.Files) {
		result := r.Files[fn]
		testdir := ModelPath(fn)

		if result.BuildFailed() {
			out = append(out, fmt.Sprintf("* %s **%s**: %s", mdFailGlyph, testdir, result.Message))
			continue
		}

		anyFailed := false
		var testOut []string
		for _, testname := range sortedKeys(result.Tests) {
			test := result.Tests[testname]
			if test.Passed() {
				testOut = append(testOut, fmt.Sprintf("  * %s **%s**", mdPassGlyph, testname))
				continue
			}
			anyFailed = true
			testOut = append(testOut, fmt.Sprintf("  * %s **%s**:", mdFailGlyph, testname))
			for _, message := range test.Messages {
				if m, ok := FormatMessage(message, Markdown, true); ok {
					testOut = append(testOut, fmt.Sprintf("       * %s", m))
				}
			}
		}

		if len(testOut) == 0 {
			continue
		}
		if anyFailed {
			out = append(out, fmt.Sprintf("* %s **%s**:", mdFailGlyph, testdir))
		} else {
			out = append(out, fmt.Sprintf("* %s **%s**", mdPassGlyph, testdir))
		}
		out = append(out, testOut...)
	}

	_, err := fmt.Fprintln(w, strings.Join(out, "\n"))
	return err
}
