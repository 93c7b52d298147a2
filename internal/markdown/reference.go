package markdown

import (
	"regexp"
	"strings"
)

// referencePattern is "@", a lowercase-starting identifier, a slash, then path characters.
// Annotation-like tokens (@Override, @Service) never match: they start uppercase or lack the slash.
var referencePattern = regexp.MustCompile(`@[a-z][a-zA-Z0-9_.-]*/[a-zA-Z0-9_./-]+`)

const trailingPunctuation = ".,:;"

// Reference is an @path token found in markdown prose.
type Reference struct {
	Token string // as written, including the leading "@"
	Path  string // token without the "@"
	Line  int    // 1-based
	Start int    // byte offset of "@" in the line
	End   int    // byte offset just past the token
}

// FirstSegment is the leading path segment, used to detect cross-repository references.
func (r Reference) FirstSegment() string {
	segment, _, _ := strings.Cut(r.Path, "/")
	return segment
}

// Extract finds reference tokens in lines, which should already have fenced blocks stripped.
// An "@" directly preceded by a word character (an e-mail address) does not start a token.
func Extract(lines []string) []Reference {
	var refs []Reference

	for i, line := range lines {
		for _, loc := range referencePattern.FindAllStringIndex(line, -1) {
			start, end := loc[0], loc[1]
			if start > 0 && isWordByte(line[start-1]) {
				continue
			}

			token := strings.TrimRight(line[start:end], trailingPunctuation)

			refs = append(refs, Reference{
				Token: token,
				Path:  token[1:],
				Line:  i + 1,
				Start: start,
				End:   start + len(token),
			})
		}
	}

	return refs
}

func isWordByte(b byte) bool {
	return b == '_' || b == '.' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
