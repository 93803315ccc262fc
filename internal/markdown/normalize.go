package markdown

import (
	"strings"
)

// minUnderlineLength is the minimum number of hyphens a line needs to be
// treated as a heading underline.
const minUnderlineLength = 3

// NormalizeHeadings rewrites every underline-style heading into a
// second-level ATX heading followed by a blank line:
//
//	Supported tags          ## Supported tags
//	--------------    →
//
// A heading is a non-blank line immediately followed by an underline line
// (see isUnderline). Both lines must be newline-terminated; "\n" and
// "\r\n" are accepted. Surrounding spaces and tabs are dropped from the
// title. Lines that are not part of such a pair are copied unchanged,
// including ATX headings and their line endings.
func NormalizeHeadings(doc string) string {
	lines := splitLines(doc)

	var b strings.Builder
	b.Grow(len(doc))

	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) && isHeadingText(lines[i]) &&
			isUnderline(lines[i+1]) && isTerminated(lines[i+1]) {
			b.WriteString("## ")
			b.WriteString(strings.TrimSpace(lines[i]))
			b.WriteString("\n\n")
			// The underline has been consumed together with its title.
			i++
			continue
		}
		b.WriteString(lines[i])
	}

	return b.String()
}

// splitLines cuts doc into lines that keep their terminators, so the
// document can be reassembled byte for byte. The last line may lack one.
func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.SplitAfter(doc, "\n")
	// SplitAfter yields a trailing empty element when doc ends in "\n".
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isTerminated reports whether the line ends with a newline.
func isTerminated(line string) bool {
	return strings.HasSuffix(line, "\n")
}

// trimEOL removes a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// isBlank reports whether the line holds only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isHeadingText reports whether the line can serve as the text of an
// underline-style heading.
func isHeadingText(line string) bool {
	return !isBlank(line)
}

// isUnderline reports whether the line consists of at least
// minUnderlineLength hyphens, optionally surrounded by spaces or tabs.
func isUnderline(line string) bool {
	body := strings.Trim(trimEOL(line), " \t")
	if len(body) < minUnderlineLength {
		return false
	}
	return strings.Trim(body, "-") == ""
}
