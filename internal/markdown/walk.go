package markdown

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// probeName stands in for "any child" when deciding whether to prune a directory.
const probeName = "_"

// ListMarkdownFiles returns the slash-separated, root-relative paths of every
// .md file under root, sorted. Files matching an exclude glob are dropped and a
// directory is pruned when an arbitrary child of it would be excluded, so
// "**/node_modules/**" never descends into node_modules.
func ListMarkdownFiles(root string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && matchesAny(excludes, path.Join(rel, probeName)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(path.Ext(rel), ".md") || matchesAny(excludes, rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Resolve looks for target relative to, in order, the referencing file's
// directory, the repository root, and the repository root's parent (sibling
// checkouts). It returns the first existing candidate.
func Resolve(target, fileDir, repoRoot string, exists func(string) bool) (string, bool) {
	native := filepath.FromSlash(target)
	for _, base := range []string{fileDir, repoRoot, filepath.Dir(repoRoot)} {
		candidate := filepath.Join(base, native)
		if exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
