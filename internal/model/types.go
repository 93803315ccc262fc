package model

import (
	"fmt"
	"strings"
)

// Well-known section titles.
const (
	// LatestUnstableTitle is the title of the special subsection that is
	// lifted out of its host section into a section of its own. It is the
	// only section rendered with a second-level heading.
	LatestUnstableTitle = "Latest unstable"

	// LatestUnstableMarker is the literal text that introduces the special
	// subsection inside a section body.
	LatestUnstableMarker = "## " + LatestUnstableTitle

	// ReleaseCandidatesTitle is the heading used for the release candidate
	// block rendered from the build matrix.
	ReleaseCandidatesTitle = "Release candidates"
)

// DefaultUsageSections lists the section titles routed to the "usage"
// output when no other policy is configured.
var DefaultUsageSections = []string{
	"How to use this image",
	"Image Variants",
}

// Section is a (title, body) pair extracted from a markdown document.
// Sections are derived on every run and never persisted.
type Section struct {
	// Title is the heading text with surrounding whitespace removed.
	Title string `json:"title"`

	// Body is everything between the heading line and the next top-level
	// heading, trimmed.
	Body string `json:"body"`
}

// HeadingMarker returns the ATX marker the section is rendered with.
// "Latest unstable" is always rendered one level lower than the
// top-level sections it was extracted from.
func (s Section) HeadingMarker() string {
	if s.Title == LatestUnstableTitle {
		return "##"
	}
	return "#"
}

// String renders the section as "<marker> <title>\n<body>".
func (s Section) String() string {
	return fmt.Sprintf("%s %s\n%s", s.HeadingMarker(), s.Title, s.Body)
}

// Channel classifies a build matrix entry by release maturity.
type Channel string

const (
	// ChannelOfficial is a regular, supported release.
	ChannelOfficial Channel = "official"

	// ChannelReleaseCandidate is a pre-release build (name contains "rc").
	ChannelReleaseCandidate Channel = "rc"

	// ChannelUnstable is the latest unstable build (name contains "unstable").
	ChannelUnstable Channel = "unstable"
)

// String returns the string representation of Channel.
func (c Channel) String() string {
	return string(c)
}

// IsValid checks whether the Channel value is one of the predefined channels.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelOfficial, ChannelReleaseCandidate, ChannelUnstable:
		return true
	default:
		return false
	}
}

// ParseChannel converts a string to a Channel.
// Returns an error if the string does not match any valid channel.
func ParseChannel(s string) (Channel, error) {
	ch := Channel(strings.ToLower(s))
	if !ch.IsValid() {
		return "", fmt.Errorf("invalid release channel: %q (valid: official, rc, unstable)", s)
	}
	return ch, nil
}

// ExitCode defines the CLI exit codes. Every failure is terminal and
// reported with the same code; the ErrorKind carried by CLIError tells
// the failures apart in diagnostics.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates any failure: missing input, malformed
	// JSON, missing matrix fields or an unexpected error.
	ExitGeneralError ExitCode = 1
)

// ErrorKind is the diagnostic category of a terminal failure.
type ErrorKind string

const (
	// KindInputNotFound means an input file does not exist.
	KindInputNotFound ErrorKind = "input-not-found"

	// KindMalformedJSON means the build matrix could not be parsed.
	KindMalformedJSON ErrorKind = "malformed-json"

	// KindMissingField means a required matrix key is absent or empty.
	KindMissingField ErrorKind = "missing-field"

	// KindUnexpected covers every other failure.
	KindUnexpected ErrorKind = "unexpected"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// CLIError is a custom error type that carries an exit code and a
// diagnostic kind. The CLI layer translates it into a log line and a
// process exit code.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Kind is the diagnostic category of the failure.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given kind and message.
// The exit code is always ExitGeneralError.
func NewCLIError(kind ErrorKind, message string) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: kind, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(kind ErrorKind, message string, err error) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: kind, Message: message, Err: err}
}
