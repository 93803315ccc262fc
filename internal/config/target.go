package config

import (
	"errors"
	"fmt"

	"github.com/distribution/reference"
)

// Target is one registry listing a description is rendered for.
type Target struct {
	// Name identifies the target in logs and errors.
	Name string `yaml:"name"`

	// Image is the repository reference, e.g. "valkey/valkey" or
	// "public.ecr.aws/valkey/valkey". It must not carry a tag or digest.
	Image string `yaml:"image"`

	// Description is the file receiving the full rendering, if any.
	Description string `yaml:"description,omitempty"`

	// About and Usage are the files receiving the split rendering, if any.
	// They are set together.
	About string `yaml:"about,omitempty"`
	Usage string `yaml:"usage,omitempty"`
}

// Validate checks a single target.
func (t Target) Validate() error {
	if t.Name == "" {
		return errors.New("target name must not be empty")
	}
	if _, err := t.reference(); err != nil {
		return err
	}
	if (t.About == "") != (t.Usage == "") {
		return fmt.Errorf("target %q: about and usage must be set together", t.Name)
	}
	if t.Description == "" && t.About == "" {
		return fmt.Errorf("target %q: no output file configured", t.Name)
	}
	return nil
}

// SplitsSections reports whether the target receives an about/usage pair.
func (t Target) SplitsSections() bool {
	return t.About != "" && t.Usage != ""
}

// RepoPath returns the repository path as users type it: Docker Hub
// references are shortened ("valkey/valkey"), others are kept in full.
func (t Target) RepoPath() (string, error) {
	named, err := t.reference()
	if err != nil {
		return "", err
	}
	return reference.FamiliarName(named), nil
}

// ImageName returns the fully qualified repository name, e.g.
// "docker.io/valkey/valkey".
func (t Target) ImageName() (string, error) {
	named, err := t.reference()
	if err != nil {
		return "", err
	}
	return named.Name(), nil
}

// reference parses and normalizes the image reference.
func (t Target) reference() (reference.Named, error) {
	if t.Image == "" {
		return nil, fmt.Errorf("target %q: image must not be empty", t.Name)
	}
	named, err := reference.ParseNormalizedNamed(t.Image)
	if err != nil {
		return nil, fmt.Errorf("target %q: invalid image reference %q: %w", t.Name, t.Image, err)
	}
	if !reference.IsNameOnly(named) {
		return nil, fmt.Errorf("target %q: image reference %q must not include a tag or digest", t.Name, t.Image)
	}
	return named, nil
}
