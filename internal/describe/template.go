package describe

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder names understood by the description template.
const (
	PlaceholderUpdateDate        = "update_date"
	PlaceholderOfficialReleases  = "official_releases"
	PlaceholderReleaseCandidates = "release_candidates_section"
	PlaceholderUnstable          = "unstable_section"
	PlaceholderRepoPath          = "container_repo_path"
	PlaceholderImage             = "container_image"
)

// ErrUnknownPlaceholder is returned by Fill for a placeholder that has no
// value.
var ErrUnknownPlaceholder = errors.New("unknown template placeholder")

// Fill substitutes every "{name}" in tmpl with values[name]. "{{" and
// "}}" produce literal braces. An unknown name, an unterminated "{" or a
// lone "}" is an error.
func Fill(tmpl string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '{' && strings.HasPrefix(tmpl[i:], "{{"):
			b.WriteByte('{')
			i++
		case c == '}' && strings.HasPrefix(tmpl[i:], "}}"):
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at offset %d", i)
			}
			name := tmpl[i+1 : i+1+end]
			value, ok := values[name]
			if !ok {
				return "", fmt.Errorf("%w: {%s}", ErrUnknownPlaceholder, name)
			}
			b.WriteString(value)
			i += end + 1
		case c == '}':
			return "", fmt.Errorf("single '}' at offset %d", i)
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}
