package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter holds the per-document settings that may precede the
// markdown body.
type FrontMatter struct {
	// UsageSections overrides the usage policy for this document when set.
	UsageSections []string `yaml:"usageSections" toml:"usageSections" json:"usageSections"`
}

// Policy returns the policy declared by the front matter, or fallback
// when the document does not declare one.
func (fm FrontMatter) Policy(fallback Policy) Policy {
	if len(fm.UsageSections) == 0 {
		return fallback
	}
	return NewPolicy(fm.UsageSections...)
}

// StripFrontMatter separates a leading front matter block from the
// markdown body. A document without front matter is returned unchanged
// with a zero FrontMatter.
func StripFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse front matter: %w", err)
	}

	return fm, body, nil
}
