package lintreport

import (
	"path"
	"strings"
)

// ModelPath derives a model's display identifier from a file path: the
// path segments that follow the "models" and "yang" anchor segments,
// slash-joined. If the anchors are not both present the result is empty.
func ModelPath(fn string) string {
	var segs []string
	inModels, inYang := false, false
	for _, p := range strings.Split(fn, "/") {
		switch p {
		case "models":
			inModels = true
			continue
		case "yang":
			inYang = true
			continue
		}
		if inModels && inYang {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, "/")
}

// ModelDir is ModelPath applied to the file's directory, used when the
// file name itself would only be noise next to the quoted diagnostic.
func ModelDir(fn string) string {
	return ModelPath(path.Dir(fn))
}
