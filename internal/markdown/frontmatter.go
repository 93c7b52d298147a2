package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// FrontMatter is the subset of YAML front matter the validator understands.
//
//	---
//	references:
//	  skip: true           # do not check this file
//	  ignore:              # or skip only these tokens
//	    - "@docs/planned.md"
//	---
type FrontMatter struct {
	References ReferenceDirectives `yaml:"references"`
}

// ReferenceDirectives declares exemptions for a single file.
type ReferenceDirectives struct {
	Skip   bool     `yaml:"skip"`
	Ignore []string `yaml:"ignore"`
}

// Ignores reports whether token is listed under references.ignore.
func (f FrontMatter) Ignores(token string) bool {
	for _, ignored := range f.References.Ignore {
		if ignored == token || "@"+ignored == token {
			return true
		}
	}
	return false
}

// SplitFrontMatter parses a leading YAML front matter block. It returns the
// parsed directives and the index of the first body line. Only a block holding
// a YAML mapping is front matter; otherwise the body starts at 0 so every line is
// still scanned. A block that does not parse is reported as an error.
func SplitFrontMatter(lines []string) (FrontMatter, int, error) {
	var meta FrontMatter
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return meta, 0, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return meta, 0, nil // a lone thematic break, not front matter
	}

	var node yaml.Node
	block := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(block), &node); err != nil {
		return FrontMatter{}, 0, fmt.Errorf("invalid front matter: %w", err)
	}
	if len(node.Content) == 0 {
		return meta, closing + 1, nil
	}
	if node.Content[0].Kind != yaml.MappingNode {
		return meta, 0, nil // prose between two thematic breaks
	}
	if err := node.Decode(&meta); err != nil {
		return FrontMatter{}, closing + 1, fmt.Errorf("invalid front matter: %w", err)
	}
	return meta, closing + 1, nil
}
