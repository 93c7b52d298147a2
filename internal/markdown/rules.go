package markdown

import (
	"regexp"
	"strings"
)

// GitHubURLPrefix is the link target a cross-repository reference must carry.
const GitHubURLPrefix = "https://github.com/"

// linkPattern matches an inline markdown link; group 1 is the text, group 2 the target.
var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)

// The rules below infer intent from surrounding prose. They are heuristics and
// will misfire on unusual wording; declared exemptions (front matter, ignore
// file) are the reliable way to silence a reference.

// inInlineCode reports whether the token at start sits inside a backtick code span.
func inInlineCode(line string, start int) bool {
	return strings.Count(line[:start], "`")%2 == 1
}

// isIllustrative reports whether the prose before the token marks it as an example.
func isIllustrative(line string, start int) bool {
	prefix := line[:start]
	return strings.HasSuffix(prefix, "Use ") || strings.Contains(prefix, "Example")
}

// inGitHubLink reports whether [start, end) lies in the text of a markdown link
// whose target is a GitHub URL.
func inGitHubLink(line string, start, end int) bool {
	for _, m := range linkPattern.FindAllStringSubmatchIndex(line, -1) {
		textStart, textEnd := m[2], m[3]
		target := line[m[4]:m[5]]
		if start >= textStart && end <= textEnd && strings.HasPrefix(target, GitHubURLPrefix) {
			return true
		}
	}
	return false
}

// underExemptPath reports whether the slash-separated relative path lies under
// any of the exempt directory prefixes (e.g. "docs/decisions/").
func underExemptPath(rel string, exemptPaths []string) bool {
	rooted := "/" + strings.TrimPrefix(rel, "/")
	for _, exempt := range exemptPaths {
		exempt = "/" + strings.Trim(exempt, "/") + "/"
		if strings.Contains(rooted, exempt) {
			return true
		}
	}
	return false
}
