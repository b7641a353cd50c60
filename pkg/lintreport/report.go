// Package lintreport formats the structured result document produced by
// the YANG model linter into a report suitable for posting as a pull
// request comment, in either GitHub flavoured Markdown or HTML.
package lintreport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SetupErrors classifies build-failure messages that indicate a repository
// setup issue rather than a problem with the change under review. The
// messages are still rendered and still count toward overall failure.
var SetupErrors = []string{
	"did not have a valid build file",
}

// IsSetupError reports whether msg belongs to the setup-error class.
func IsSetupError(msg string) bool {
	for _, e := range SetupErrors {
		if msg == e {
			return true
		}
	}
	return false
}

// Report is one complete lint result document: the outcome of every
// linted file, keyed by file path.
type Report struct {
	Files map[string]FileResult `json:"tests"`
}

// FileResult is the lint outcome for one file. It is exactly one of two
// variants: a build failure (Status present, Message set) or a test suite
// result (Tests set).
type FileResult struct {
	Status  *string               `json:"status,omitempty"`
	Message string                `json:"message,omitempty"`
	Tests   map[string]TestResult `json:"tests,omitempty"`
}

// BuildFailed reports whether the file could not be built at all. The
// variant is selected by the presence of the status field, not its value.
func (f FileResult) BuildFailed() bool {
	return f.Status != nil
}

// TestResult is the outcome of one named test against one file.
type TestResult struct {
	Status   string   `json:"status"`
	Messages []string `json:"messages"`
}

// Passed reports whether the test passed.
func (t TestResult) Passed() bool {
	return t.Status == "pass"
}

// Decode reads one complete lint result document from r. A document
// without a results collection is malformed.
func Decode(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read lint document: %w", err)
	}
	report := &Report{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("invalid JSON received from linter: %w", err)
	}
	if report.Files == nil {
		return nil, errors.New("invalid JSON received from linter: no tests collection")
	}
	return report, nil
}

// Failed reports whether any file failed to build or any test failed,
// regardless of whether the corresponding output was suppressed.
func (r *Report) Failed() bool {
	for _, f := range r.Files {
		if f.BuildFailed() {
			return true
		}
		for _, t := range f.Tests {
			if !t.Passed() {
				return true
			}
		}
	}
	return false
}
