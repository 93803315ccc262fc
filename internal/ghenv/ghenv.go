// Package ghenv appends variables to a GitHub Actions environment file
// (the file named by $GITHUB_ENV), making them available to later steps
// of the same job.
//
// Values are written as single-line JSON strings, so multi-line markdown
// survives the KEY=VALUE format and can be read back with fromJSON().
package ghenv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf16"
)

// EnvVar is the environment variable GitHub Actions uses to name the
// environment file.
const EnvVar = "GITHUB_ENV"

// Var is one variable to export.
type Var struct {
	Key   string
	Value string
}

// Line renders the variable as `KEY="json string"` without a newline.
func (v Var) Line() (string, error) {
	if err := validateKey(v.Key); err != nil {
		return "", err
	}
	encoded, err := Encode(v.Value)
	if err != nil {
		return "", err
	}
	return v.Key + "=" + encoded, nil
}

// Append writes the variables to the environment file at path, one per
// line. The file is created if missing and never truncated. Nothing is
// written when any variable is invalid.
func Append(path string, vars ...Var) error {
	if path == "" {
		return fmt.Errorf("environment file path is empty (is %s set?)", EnvVar)
	}

	var buf strings.Builder
	for _, v := range vars {
		line, err := v.Line()
		if err != nil {
			return err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open environment file: %w", err)
	}
	// defer ensures the file is closed on the write error path too.
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(buf.String()); err != nil {
		return fmt.Errorf("failed to write environment file %s: %w", path, err)
	}
	return f.Close()
}

// Encode returns value as a JSON string literal restricted to ASCII:
// every character outside printable ASCII is written as a \uXXXX escape
// (surrogate pairs above U+FFFF), while HTML characters stay literal.
func Encode(value string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("failed to encode value: %w", err)
	}
	// Encoder.Encode terminates its output with a newline.
	encoded := strings.TrimSuffix(buf.String(), "\n")

	var b strings.Builder
	b.Grow(len(encoded))
	for _, r := range encoded {
		switch {
		case r < 0x7f:
			b.WriteRune(r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String(), nil
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("environment variable name must not be empty")
	}
	if strings.ContainsAny(key, "=\r\n") {
		return fmt.Errorf("invalid environment variable name %q", key)
	}
	return nil
}
