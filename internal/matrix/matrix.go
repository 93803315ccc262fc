package matrix

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/repodesc/internal/model"
)

// DefaultDockerfileBaseURL is the location the Dockerfile links in tag
// bullets point to.
const DefaultDockerfileBaseURL = "https://github.com/valkey-io/valkey-container/blob/master"

// Matrix is the decoded build matrix.
type Matrix struct {
	// Include lists the matrix entries in file order.
	Include []Entry
}

// Entry is one build variant of the matrix.
type Entry struct {
	// Name identifies the variant, e.g. "8.0" or "8.1-rc1". It drives
	// the channel classification.
	Name string

	// Meta carries the published tag sets.
	Meta Meta
}

// Meta groups the tag sets of an entry.
type Meta struct {
	// Entries holds the tag sets. Only the first is rendered.
	Entries []Variant `json:"entries"`
}

// Variant is a set of tags built from one Dockerfile directory.
type Variant struct {
	// Tags are the published tags, optionally prefixed with "<version>:".
	Tags []string `json:"tags"`

	// Directory is the repository path holding the Dockerfile.
	Directory string `json:"directory"`
}

// rawDocument mirrors the file layout with pointers, so absent keys can
// be told apart from empty ones.
type rawDocument struct {
	Matrix *struct {
		Include *[]rawEntry `json:"include"`
	} `json:"matrix"`
}

type rawEntry struct {
	Name *string `json:"name"`
	Meta *Meta   `json:"meta"`
}

// Load reads and decodes a matrix file.
//
// A missing file yields an error wrapping fs.ErrNotExist. Invalid JSON
// yields a *ParseError. A document without "matrix", "matrix.include" or
// an entry "name" yields a *FieldError.
func Load(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes matrix file contents. The path is only used in errors.
func Parse(path string, data []byte) (*Matrix, error) {
	// Strip comments and trailing commas; the result is plain JSON.
	var raw rawDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if raw.Matrix == nil {
		return nil, &FieldError{Field: "matrix", Container: "document"}
	}
	if raw.Matrix.Include == nil {
		return nil, &FieldError{Field: "include", Container: "matrix"}
	}

	m := &Matrix{Include: make([]Entry, 0, len(*raw.Matrix.Include))}
	for i, re := range *raw.Matrix.Include {
		if re.Name == nil {
			return nil, &FieldError{Field: "name", Container: fmt.Sprintf("include[%d]", i)}
		}
		entry := Entry{Name: *re.Name}
		if re.Meta != nil {
			entry.Meta = *re.Meta
		}
		m.Include = append(m.Include, entry)
	}

	return m, nil
}

// Classify assigns a release channel from an entry name. Names containing
// "rc" are release candidates; otherwise names containing "unstable" are
// the latest unstable build; everything else is an official release.
func Classify(name string) model.Channel {
	switch {
	case strings.Contains(name, "rc"):
		return model.ChannelReleaseCandidate
	case strings.Contains(name, "unstable"):
		return model.ChannelUnstable
	default:
		return model.ChannelOfficial
	}
}

// CleanTag drops a "<version>:" prefix: "3.0:bullseye" becomes "bullseye".
// Tags without a colon are returned unchanged.
func CleanTag(tag string) string {
	if _, after, found := strings.Cut(tag, ":"); found {
		return after
	}
	return tag
}

// FormatTagLine renders the markdown bullet for an entry:
//
//	- [`bookworm`, `latest`](<baseURL>/8.0/bookworm/Dockerfile)
//
// Only the first tag set is used. It must have tags and a directory.
func FormatTagLine(e Entry, baseURL string) (string, error) {
	if len(e.Meta.Entries) == 0 {
		return "", &FieldError{Field: "entries", Container: "meta", Entry: e.Name}
	}

	first := e.Meta.Entries[0]
	if len(first.Tags) == 0 {
		return "", &FieldError{Field: "tags", Container: "entry", Entry: e.Name}
	}
	if first.Directory == "" {
		return "", &FieldError{Field: "directory", Container: "entry", Entry: e.Name}
	}

	tags := make([]string, 0, len(first.Tags))
	for _, tag := range first.Tags {
		tags = append(tags, "`"+CleanTag(tag)+"`")
	}

	return fmt.Sprintf("- [%s](%s/%s/Dockerfile)",
		strings.Join(tags, ", "),
		strings.TrimSuffix(baseURL, "/"),
		first.Directory,
	), nil
}
