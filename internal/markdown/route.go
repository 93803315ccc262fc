package markdown

import (
	"strings"
	"unicode"

	"github.com/mmr-tortoise/repodesc/internal/model"
)

// Policy decides which sections belong to the "usage" document.
// Every other section, and the preamble, goes to "about".
type Policy struct {
	usage map[string]struct{}
	order []string
}

// NewPolicy creates a Policy routing the given titles to "usage".
// Titles are matched exactly.
func NewPolicy(usageTitles ...string) Policy {
	p := Policy{usage: make(map[string]struct{}, len(usageTitles))}
	for _, title := range usageTitles {
		if _, dup := p.usage[title]; dup {
			continue
		}
		p.usage[title] = struct{}{}
		p.order = append(p.order, title)
	}
	return p
}

// DefaultPolicy routes "How to use this image" and "Image Variants" to
// "usage".
func DefaultPolicy() Policy {
	return NewPolicy(model.DefaultUsageSections...)
}

// IsUsage reports whether a section with this title belongs to "usage".
func (p Policy) IsUsage(title string) bool {
	_, ok := p.usage[title]
	return ok
}

// Titles returns the usage titles in the order they were given.
func (p Policy) Titles() []string {
	return append([]string(nil), p.order...)
}

// Route reassembles the preamble and sections into the "about" and
// "usage" documents.
//
// The preamble, with leading "##" markers removed from its lines, opens
// "about". Sections follow in order as "<marker> <title>\n<body>", each
// separated by a blank line, in whichever document the policy selects.
// Both results are right-trimmed.
func Route(preamble string, sections *Sections, policy Policy) (about, usage string) {
	var aboutBuf, usageBuf strings.Builder

	if cleaned := stripSubheadingMarkers(preamble); cleaned != "" {
		aboutBuf.WriteString(cleaned)
		aboutBuf.WriteString("\n\n")
	}

	for _, sec := range sections.All() {
		dst := &aboutBuf
		if policy.IsUsage(sec.Title) {
			dst = &usageBuf
		}
		dst.WriteString(sec.String())
		dst.WriteString("\n\n")
	}

	return trimRight(aboutBuf.String()), trimRight(usageBuf.String())
}

// stripSubheadingMarkers removes a leading "##" and the whitespace after
// it from every line. Normalized underline headings in the preamble thus
// turn back into plain text.
func stripSubheadingMarkers(preamble string) string {
	if preamble == "" {
		return ""
	}
	lines := strings.Split(preamble, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, "##"); ok {
			lines[i] = strings.TrimLeftFunc(rest, unicode.IsSpace)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
