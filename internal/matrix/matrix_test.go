package matrix

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/repodesc/internal/model"
)

const testBaseURL = DefaultDockerfileBaseURL

// TestLoad_Fixture loads the annotated fixture, exercising comment and
// trailing-comma tolerance.
func TestLoad_Fixture(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "matrix.jsonc"))
	require.NoError(t, err)

	require.Len(t, m.Include, 4)
	assert.Equal(t, "8.1", m.Include[0].Name)
	assert.Equal(t, []string{"8.1:bookworm", "8.1:latest", "8.1"}, m.Include[0].Meta.Entries[0].Tags)
	assert.Equal(t, "8.1/debian", m.Include[0].Meta.Entries[0].Directory)
	assert.Equal(t, "unstable", m.Include[3].Name)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

// TestParse_Errors checks that structural problems are reported with
// the right error type.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantParse bool
	}{
		{name: "syntax error", input: `{"matrix": {`, wantParse: true},
		{name: "wrong type", input: `{"matrix": {"include": "x"}}`, wantParse: true},
		{name: "missing matrix", input: `{}`, wantField: "matrix"},
		{name: "null matrix", input: `{"matrix": null}`, wantField: "matrix"},
		{name: "missing include", input: `{"matrix": {}}`, wantField: "include"},
		{name: "missing name", input: `{"matrix": {"include": [{"meta": {}}]}}`, wantField: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("matrix.json", []byte(tt.input))
			require.Error(t, err)

			if tt.wantParse {
				var pe *ParseError
				require.True(t, errors.As(err, &pe), "expected ParseError, got %T", err)
				assert.Equal(t, "matrix.json", pe.Path)
				assert.False(t, errors.Is(err, ErrMissingField))
				return
			}

			var fe *FieldError
			require.True(t, errors.As(err, &fe), "expected FieldError, got %T", err)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.True(t, errors.Is(err, ErrMissingField))
		})
	}
}

func TestParse_EmptyInclude(t *testing.T) {
	m, err := Parse("matrix.json", []byte(`{"matrix": {"include": []}}`))
	require.NoError(t, err)
	assert.Empty(t, m.Include)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want model.Channel
	}{
		{"8.0", model.ChannelOfficial},
		{"7.2-alpine", model.ChannelOfficial},
		{"8.0-rc1", model.ChannelReleaseCandidate},
		{"unstable", model.ChannelUnstable},
		{"unstable-rc", model.ChannelReleaseCandidate}, // "rc" is checked first
		{"", model.ChannelOfficial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestCleanTag(t *testing.T) {
	assert.Equal(t, "bullseye", CleanTag("3.0:bullseye"))
	assert.Equal(t, "latest", CleanTag("latest"))
	assert.Equal(t, "b:c", CleanTag("a:b:c"))
	assert.Equal(t, "", CleanTag("8.0:"))
}

// TestFormatTagLine_ReleaseCandidate uses the exact entry from the
// registry listing examples.
func TestFormatTagLine_ReleaseCandidate(t *testing.T) {
	entry := Entry{
		Name: "8.0-rc1",
		Meta: Meta{Entries: []Variant{{Tags: []string{"8.0-rc1:bookworm"}, Directory: "8.0/bookworm"}}},
	}

	line, err := FormatTagLine(entry, testBaseURL)
	require.NoError(t, err)
	assert.Equal(t, "- [`bookworm`](https://github.com/valkey-io/valkey-container/blob/master/8.0/bookworm/Dockerfile)", line)
}

func TestFormatTagLine_MultipleTags(t *testing.T) {
	entry := Entry{
		Name: "8.1",
		Meta: Meta{Entries: []Variant{
			{Tags: []string{"8.1:bookworm", "latest"}, Directory: "8.1/debian"},
			{Tags: []string{"ignored"}, Directory: "ignored"},
		}},
	}

	line, err := FormatTagLine(entry, "https://example.com/repo/")
	require.NoError(t, err)
	assert.Equal(t, "- [`bookworm`, `latest`](https://example.com/repo/8.1/debian/Dockerfile)", line)
}

// TestFormatTagLine_MissingFields checks that every missing field is
// named in the error.
func TestFormatTagLine_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		field string
	}{
		{
			name:  "no entries",
			entry: Entry{Name: "8.0"},
			field: "entries",
		},
		{
			name:  "no tags",
			entry: Entry{Name: "8.0", Meta: Meta{Entries: []Variant{{Directory: "8.0/debian"}}}},
			field: "tags",
		},
		{
			name:  "no directory",
			entry: Entry{Name: "8.0", Meta: Meta{Entries: []Variant{{Tags: []string{"8.0"}}}}},
			field: "directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatTagLine(tt.entry, testBaseURL)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingField))

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, "8.0", fe.Entry)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
