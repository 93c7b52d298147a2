package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreList is a repository's declared exemptions. Each non-comment line is
// either an @token to ignore everywhere or a doublestar glob over repo-relative
// markdown paths whose files are skipped entirely.
type IgnoreList struct {
	tokens map[string]bool
	globs  []string
}

// LoadIgnoreList reads an ignore file. A missing file yields an empty list.
func LoadIgnoreList(path string) (*IgnoreList, error) {
	list := &IgnoreList{tokens: make(map[string]bool)}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return list, nil
		}
		return nil, fmt.Errorf("failed to open ignore file %q: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@") {
			list.tokens[line] = true
			continue
		}
		if !doublestar.ValidatePattern(line) {
			return nil, fmt.Errorf("invalid pattern %q in ignore file %q", line, path)
		}
		list.globs = append(list.globs, line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read ignore file %q: %w", path, scanErr)
	}

	return list, nil
}

// SkipsFile reports whether the repo-relative, slash-separated path is ignored.
func (l *IgnoreList) SkipsFile(rel string) bool {
	return matchesAny(l.globs, rel)
}

// SkipsToken reports whether the token is ignored.
func (l *IgnoreList) SkipsToken(token string) bool {
	return l.tokens[token]
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
