package lintreport

import (
	"fmt"
	"io"
	"strings"
)

// HTML entities for the same glyphs GitHub shows for the Markdown
// equivalents.
const (
	htmlPassGlyph = "&#x2705;" // checkmark emoji
	htmlFailGlyph = "&#x26D4;" // blocked emoji
)

// sprintLineHTML prints a single list item to be put under a summary item.
func sprintLineHTML(format string, a ...interface{}) string {
	return fmt.Sprintf("  <li>"+format+"</li>\n", a...)
}

// sprintSummaryHTML prints a collapsible disclosure block whose one-line
// summary carries the pass/fail glyph and title, wrapping the given body.
func sprintSummaryHTML(glyph, title, body string) string {
	return fmt.Sprintf("<details>\n  <summary>%s&nbsp; %s</summary>\n%s</details>\n", glyph, title, body)
}

// renderHTML writes the report as nested disclosure blocks: one per file,
// one per test inside it, and a list item per diagnostic of a failing
// test.
func renderHTML(w io.Writer, r *Report) error {
	var out strings.Builder
	for _, fn := range sortedKeys(r.Files) {
		result := r.Files[fn]
		testdir := ModelPath(fn)

		if result.BuildFailed() {
			out.WriteString(sprintSummaryHTML(htmlFailGlyph, testdir, sprintLineHTML("%s", result.Message)))
			continue
		}

		anyFailed := false
		var tests strings.Builder
		for _, testname := range sortedKeys(result.Tests) {
			test := result.Tests[testname]
			if test.Passed() {
				tests.WriteString(sprintSummaryHTML(htmlPassGlyph, testname, ""))
				continue
			}
			anyFailed = true
			var messages strings.Builder
			for _, message := range test.Messages {
				if m, ok := FormatMessage(message, HTML, true); ok {
					messages.WriteString(sprintLineHTML("%s", m))
				}
			}
			tests.WriteString(sprintSummaryHTML(htmlFailGlyph, testname, messages.String()))
		}

		if tests.Len() == 0 {
			continue
		}
		glyph := htmlPassGlyph
		if anyFailed {
			glyph = htmlFailGlyph
		}
		out.WriteString(sprintSummaryHTML(glyph, testdir, tests.String()))
	}

	_, err := io.WriteString(w, out.String())
	return err
}
