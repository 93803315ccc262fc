package matrix

import (
	"strings"

	"github.com/mmr-tortoise/repodesc/internal/model"
)

// Blocks holds the rendered tag bullets grouped by release channel,
// each in matrix order.
type Blocks struct {
	Official          []string
	ReleaseCandidates []string
	Unstable          []string
}

// Group renders every entry of the matrix and sorts the bullets into
// channels. The first invalid entry aborts grouping.
func Group(m *Matrix, baseURL string) (Blocks, error) {
	var b Blocks

	for _, entry := range m.Include {
		line, err := FormatTagLine(entry, baseURL)
		if err != nil {
			return Blocks{}, err
		}

		switch Classify(entry.Name) {
		case model.ChannelReleaseCandidate:
			b.ReleaseCandidates = append(b.ReleaseCandidates, line)
		case model.ChannelUnstable:
			b.Unstable = append(b.Unstable, line)
		default:
			b.Official = append(b.Official, line)
		}
	}

	return b, nil
}

// OfficialSection joins the official release bullets.
func (b Blocks) OfficialSection() string {
	return strings.Join(b.Official, "\n")
}

// ReleaseCandidatesSection renders the optional release candidate block,
// "\n## Release candidates\n<bullets>", or "" when there are none.
func (b Blocks) ReleaseCandidatesSection() string {
	return optionalSection(model.ReleaseCandidatesTitle, b.ReleaseCandidates)
}

// UnstableSection renders the optional "\n## Latest unstable\n<bullets>"
// block, or "" when there is no unstable build.
func (b Blocks) UnstableSection() string {
	return optionalSection(model.LatestUnstableTitle, b.Unstable)
}

func optionalSection(title string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return "\n## " + title + "\n" + strings.Join(lines, "\n")
}
