package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/repodesc/internal/model"
)

// TestSplitSections_Basic verifies preamble extraction and title/body
// separation for plain top-level headings.
func TestSplitSections_Basic(t *testing.T) {
	doc := "notice\n\n# Quick reference\nqr body\n\n# License\nlicense body\n"

	preamble, sections := SplitSections(doc)

	assert.Equal(t, "notice", preamble)
	assert.Equal(t, []string{"Quick reference", "License"}, sections.Titles())

	body, ok := sections.Get("Quick reference")
	require.True(t, ok)
	assert.Equal(t, "qr body", body)

	body, ok = sections.Get("License")
	require.True(t, ok)
	assert.Equal(t, "license body", body)
}

// TestSplitSections_NoHeadings checks that a headingless document is all
// preamble.
func TestSplitSections_NoHeadings(t *testing.T) {
	preamble, sections := SplitSections("  Just some text.\n\nMore text.\n")

	assert.Equal(t, "Just some text.\n\nMore text.", preamble)
	assert.Equal(t, 0, sections.Len())
}

// TestSplitSections_HeadingDetection verifies which lines open a
// top-level section.
func TestSplitSections_HeadingDetection(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		preamble string
		titles   []string
	}{
		{
			name:     "second level heading stays in the body",
			doc:      "# A\n## Sub\ntext\n",
			preamble: "",
			titles:   []string{"A"},
		},
		{
			name:     "hash without space is not a heading",
			doc:      "#hashtag\n# A\nx\n",
			preamble: "#hashtag",
			titles:   []string{"A"},
		},
		{
			name:     "hash in the middle of a line is not a heading",
			doc:      "see # A\nmore\n",
			preamble: "see # A\nmore",
			titles:   []string{},
		},
		{
			name:     "heading without a newline",
			doc:      "# Only",
			preamble: "",
			titles:   []string{"Only"},
		},
		{
			name:     "carriage returns are trimmed from titles",
			doc:      "Intro\r\n# A\r\nbody\r\n",
			preamble: "Intro",
			titles:   []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preamble, sections := SplitSections(tt.doc)
			assert.Equal(t, tt.preamble, preamble)
			assert.Equal(t, tt.titles, sections.Titles())
		})
	}
}

// TestSplitSections_LatestUnstable checks that the "## Latest unstable"
// subsection is lifted out of its host section and placed right after it.
func TestSplitSections_LatestUnstable(t *testing.T) {
	doc := "# Supported tags\n- official\n\n## Latest unstable\nfoo\n# Next\nn\n"

	_, sections := SplitSections(doc)

	assert.Equal(t, []string{"Supported tags", model.LatestUnstableTitle, "Next"}, sections.Titles())

	host, _ := sections.Get("Supported tags")
	assert.Equal(t, "- official", host)
	assert.NotContains(t, host, "Latest unstable")

	unstable, ok := sections.Get(model.LatestUnstableTitle)
	require.True(t, ok)
	assert.Equal(t, "foo", unstable)
}

// TestSplitSections_LatestUnstableSplitsOnFirstMarker verifies that only
// the first marker splits the body.
func TestSplitSections_LatestUnstableSplitsOnFirstMarker(t *testing.T) {
	doc := "# Tags\na\n## Latest unstable\nu1\n## Latest unstable\nu2\n"

	_, sections := SplitSections(doc)

	unstable, _ := sections.Get(model.LatestUnstableTitle)
	assert.Equal(t, "u1\n## Latest unstable\nu2", unstable)
}

// TestSplitSections_LatestUnstableFromTwoHosts checks that a later
// "Latest unstable" overwrites the earlier body but keeps its position.
func TestSplitSections_LatestUnstableFromTwoHosts(t *testing.T) {
	doc := "# A\na\n## Latest unstable\nu1\n# B\nb\n## Latest unstable\nu2\n"

	_, sections := SplitSections(doc)

	assert.Equal(t, []string{"A", model.LatestUnstableTitle, "B"}, sections.Titles())
	unstable, _ := sections.Get(model.LatestUnstableTitle)
	assert.Equal(t, "u2", unstable)

	b, _ := sections.Get("B")
	assert.Equal(t, "b", b)
}

// TestSplitSections_DuplicateTitles preserves the "first position, last
// value" behaviour for repeated top-level titles.
func TestSplitSections_DuplicateTitles(t *testing.T) {
	doc := "# A\none\n# B\ntwo\n# A\nthree\n"

	_, sections := SplitSections(doc)

	assert.Equal(t, []string{"A", "B"}, sections.Titles())
	a, _ := sections.Get("A")
	assert.Equal(t, "three", a)
}
