package markdown

import "strings"

const minFenceLength = 3

// StripFencedBlocks blanks every line that belongs to a fenced code block
// (``` or ~~~, fence lines included) so illustrative examples are never read as
// references. Line count and numbering are preserved. An unclosed fence runs to
// the end of the document.
func StripFencedBlocks(lines []string) []string {
	out := make([]string, len(lines))
	fence := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if fence == "" {
			if marker := openingFence(trimmed); marker != "" {
				fence = marker
				continue
			}
			out[i] = line
			continue
		}

		if isClosingFence(trimmed, fence) {
			fence = ""
		}
	}

	return out
}

// openingFence returns the fence marker run that opens a code block, or "".
func openingFence(trimmed string) string {
	for _, char := range []byte{'`', '~'} {
		n := 0
		for n < len(trimmed) && trimmed[n] == char {
			n++
		}
		if n >= minFenceLength {
			return trimmed[:n]
		}
	}
	return ""
}

// isClosingFence reports whether trimmed closes a block opened with fence:
// the same character, at least as long, and nothing else on the line.
func isClosingFence(trimmed, fence string) bool {
	if len(trimmed) < len(fence) {
		return false
	}
	return strings.Trim(trimmed, fence[:1]) == ""
}
