// Package buildspec reads the per-directory .spec.yml documents that
// describe how each YANG model in a models repository is assembled for CI.
//
// A specification document is an ordered sequence of build entries. Each
// entry names the model, lists the files handed to the compiler, and may
// opt the model out of CI entirely with run-ci: false.
package buildspec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NamePlaceholder is substituted for an entry that declares no name.
const NamePlaceholder = "undefined"

// Entry is one build specification record.
type Entry struct {
	// Name identifies the model built by this entry.
	Name string `yaml:"name"`
	// BuildFiles are the files handed to the model compiler, in document
	// order. nil means the build stanza was absent, which is only legal
	// when CI is disabled.
	BuildFiles []string `yaml:"build"`
	// RunCI is the entry's run-ci setting; an absent key means true.
	RunCI *bool `yaml:"run-ci"`
}

// UnmarshalYAML fills in the documented defaults for absent keys.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	type plain Entry
	p := plain{Name: NamePlaceholder}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// CIEnabled reports whether CI should run for this entry.
func (e Entry) CIEnabled() bool {
	return e.RunCI == nil || *e.RunCI
}

// Parse decodes a specification document into its ordered entries.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("error while unmarshalling specification: %w", err)
	}
	return entries, nil
}

// ParseFile decodes the specification document at path.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open the specification file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Line renders the entry's build line. A CI-disabled entry collapses to
// the short form "0!" with neither files nor name. An enabled entry with
// no build stanza is malformed.
func Line(e Entry) (string, error) {
	if !e.CIEnabled() {
		return "0!", nil
	}
	if e.BuildFiles == nil {
		return "", fmt.Errorf("specification entry %q did not include a build stanza", e.Name)
	}
	return fmt.Sprintf("1!%s!%s", strings.Join(e.BuildFiles, ","), e.Name), nil
}

// Render writes one build line per entry in document order. Rendering
// stops at the first malformed entry; lines already written stay written.
func Render(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		line, err := Line(e)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
