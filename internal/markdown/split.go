package markdown

import (
	"strings"

	"github.com/mmr-tortoise/repodesc/internal/model"
)

// topLevelMarker starts a top-level ATX heading. "##" headings do not
// match because their second character is not a space.
const topLevelMarker = "# "

// SplitSections cuts a normalized document into its preamble and an
// ordered set of sections.
//
// The preamble is the trimmed text before the first top-level heading.
// Each heading's title runs to the end of its line; the body is everything
// up to the next top-level heading. When a body contains
// "## Latest unstable", the text after the first occurrence is stored as a
// separate "Latest unstable" section right after its host. Duplicate
// titles keep their first position and take the last body.
func SplitSections(doc string) (string, *Sections) {
	chunks := splitTopLevel(doc)
	preamble := strings.TrimSpace(chunks[0])

	sections := &Sections{}
	for _, chunk := range chunks[1:] {
		title, body, _ := strings.Cut(chunk, "\n")
		title = strings.TrimSpace(title)

		if host, unstable, found := strings.Cut(body, model.LatestUnstableMarker); found {
			sections.Upsert(title, strings.TrimSpace(host))
			sections.Upsert(model.LatestUnstableTitle, strings.TrimSpace(unstable))
			continue
		}
		sections.Upsert(title, strings.TrimSpace(body))
	}

	return preamble, sections
}

// splitTopLevel cuts doc at every line that is a top-level heading and
// drops the heading marker. The first chunk is the text before the first
// heading and is always present, possibly empty.
func splitTopLevel(doc string) []string {
	var chunks []string
	start := 0

	for pos := 0; pos < len(doc); {
		if isTopLevelHeading(doc[pos:]) {
			chunks = append(chunks, doc[start:pos])
			start = pos + len(topLevelMarker)
		}
		next := strings.IndexByte(doc[pos:], '\n')
		if next < 0 {
			break
		}
		pos += next + 1
	}

	return append(chunks, doc[start:])
}

// isTopLevelHeading reports whether the text at a line start opens a
// top-level heading.
func isTopLevelHeading(line string) bool {
	return strings.HasPrefix(line, topLevelMarker)
}
