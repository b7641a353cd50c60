package buildspec

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// SpecFileName is the conventional name of a model directory's build
// specification document.
const SpecFileName = ".spec.yml"

// Tree holds the build specifications of an entire model tree.
type Tree struct {
	// ModelRoot is the root directory the tree was parsed from.
	ModelRoot string
	// Specs maps each model directory, relative to ModelRoot, to the
	// entries of its specification document.
	Specs map[string][]Entry
}

// ParseTree walks modelRoot and decodes every .spec.yml found beneath it.
func ParseTree(modelRoot string) (Tree, error) {
	specs := map[string][]Entry{}
	err := filepath.WalkDir(modelRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != SpecFileName {
			return nil
		}
		entries, err := ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		relPath, err := filepath.Rel(modelRoot, filepath.Dir(path))
		if err != nil {
			return fmt.Errorf("failed to calculate relpath at path %q (modelRoot %q): %w", path, modelRoot, err)
		}
		specs[filepath.ToSlash(relPath)] = entries
		return nil
	})
	if err != nil {
		return Tree{}, err
	}
	return Tree{ModelRoot: modelRoot, Specs: specs}, nil
}

// BuildFileLine returns every build file of every CI-enabled entry in the
// tree as a single space-separated line. Model directories are visited in
// sorted order so the line is reproducible.
func (t Tree) BuildFileLine() string {
	dirs := make([]string, 0, len(t.Specs))
	for dir := range t.Specs {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var buildFiles []string
	for _, dir := range dirs {
		for _, e := range t.Specs[dir] {
			if !e.CIEnabled() {
				continue
			}
			buildFiles = append(buildFiles, e.BuildFiles...)
		}
	}
	return strings.Join(buildFiles, " ")
}
