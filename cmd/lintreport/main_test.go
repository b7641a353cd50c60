package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const passingDoc = `{"tests": {
	"models/yang/acl/openconfig-acl.yang": {"tests": {"pyang": {"status": "pass"}}}
}}`

const failingDoc = `{"tests": {
	"models/yang/acl/openconfig-acl.yang": {"tests": {"pyang": {"status": "fail",
		"messages": ["models/yang/acl/openconfig-acl.yang:4:error:bad pattern"]}}}
}}`

func TestRunDefaultsToHTML(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader(passingDoc), &out, "html", "stdout"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "<details>") {
		t.Errorf("expected html disclosure blocks, got %q", out.String())
	}
}

func TestRunMarkdownMode(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader(passingDoc), &out, "markdown", "stdout"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), ":white_check_mark:") {
		t.Errorf("expected markdown glyphs, got %q", out.String())
	}
}

func TestRunFailingDocReportsFailureAfterRendering(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader(failingDoc), &out, "markdown", "stdout")
	if err == nil {
		t.Fatalf("expected failure for failing test")
	}
	if !strings.Contains(err.Error(), "lint failures detected") {
		t.Errorf("unexpected error: %v", err)
	}
	// The report is still written before the failure is signalled.
	if !strings.Contains(out.String(), "bad pattern") {
		t.Errorf("expected rendered report, got %q", out.String())
	}
}

func TestRunWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	var out bytes.Buffer
	if err := run(strings.NewReader(passingDoc), &out, "html", path); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "<details>") {
		t.Errorf("expected html report in file, got %q", string(data))
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader(`{"results": {}}`), &out, "html", "stdout"); err == nil {
		t.Fatalf("expected error for document without a tests collection")
	}
	if err := run(strings.NewReader("pyang crashed"), &out, "html", "stdout"); err == nil {
		t.Fatalf("expected error for non-JSON input")
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader(passingDoc), &out, "sarif", "stdout"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
