package lintreport

import (
	"fmt"
	"strings"
)

// Mode selects the report's output format.
type Mode int

const (
	// Markdown renders a flat GitHub flavoured Markdown bullet list.
	Markdown Mode = iota
	// HTML renders nested collapsible disclosure blocks.
	HTML
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case Markdown:
		return "markdown"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "markdown":
		return Markdown, nil
	case "html":
		return HTML, nil
	default:
		return 0, fmt.Errorf("unsupported output mode: %q", s)
	}
}

// FormatMessage renders one linter diagnostic. Diagnostics follow a
// colon-delimited grammar:
//
//	<filepath>:<line#>:<level>:<text>
//	<filepath>:<line#>(<subpath>):<level>:<text>
//
// where the parenthesized subpath may itself contain a colon and so span
// several fields. A message with fewer than three fields is not
// structured and passes through verbatim. A message whose level is
// exactly "warning" is dropped (second return false) when
// suppressWarnings is set.
func FormatMessage(msg string, mode Mode, suppressWarnings bool) (string, bool) {
	parts := strings.Split(msg, ":")
	if len(parts) < 3 {
		return msg, true
	}

	model := ModelDir(parts[0])

	linenum := parts[1]
	levelIdx := 2
	if i := strings.Index(linenum, "("); i >= 0 {
		// Subpath information alongside the line number is not useful
		// to users; keep the line number only.
		linenum = strings.ReplaceAll(linenum[:i], " ", "")
		j := 1
		for j < len(parts) && !strings.Contains(parts[j], ")") {
			j++
		}
		levelIdx = j + 1
	}
	if levelIdx >= len(parts) {
		return msg, true
	}

	if level := parts[levelIdx]; suppressWarnings && strings.ReplaceAll(level, " ", "") == "warning" {
		return "", false
	}

	text := strings.TrimLeft(strings.Join(parts[levelIdx+1:], ":"), " ")
	if mode == HTML {
		return fmt.Sprintf("%s (%s): <pre>%s</pre>", model, linenum, text), true
	}
	return fmt.Sprintf("%s (%s): `%s`", model, linenum, text), true
}
