// Package config holds the repodesc configuration: which registries a
// description is rendered for, where each rendering is written, and which
// sections make up the "usage" document.
//
// The defaults reproduce the Valkey listings (Docker Hub gets the full
// description, the public ECR gallery gets the about/usage pair). A YAML
// file can override any part of it:
//
//	dockerfileBaseURL: https://github.com/valkey-io/valkey-container/blob/master
//	usageSections:
//	  - How to use this image
//	  - Image Variants
//	targets:
//	  - name: dockerhub
//	    image: valkey/valkey
//	    description: dockerhub-description.md
//	  - name: ecr
//	    image: public.ecr.aws/valkey/valkey
//	    about: ecr-about.md
//	    usage: ecr-usage.md
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/repodesc/internal/matrix"
	"github.com/mmr-tortoise/repodesc/internal/model"
)

// Config is the complete repodesc configuration.
type Config struct {
	// DockerfileBaseURL prefixes the Dockerfile links in tag bullets.
	DockerfileBaseURL string `yaml:"dockerfileBaseURL"`

	// UsageSections lists the section titles routed to "usage".
	UsageSections []string `yaml:"usageSections"`

	// Targets lists the registries to render descriptions for, in order.
	Targets []Target `yaml:"targets"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DockerfileBaseURL: matrix.DefaultDockerfileBaseURL,
		UsageSections:     append([]string(nil), model.DefaultUsageSections...),
		Targets: []Target{
			{
				Name:        "dockerhub",
				Image:       "valkey/valkey",
				Description: "dockerhub-description.md",
			},
			{
				Name:  "ecr",
				Image: "public.ecr.aws/valkey/valkey",
				About: "ecr-about.md",
				Usage: "ecr-usage.md",
			},
		},
	}
}

// Load reads a YAML configuration file and overlays it on the defaults.
// Keys absent from the file keep their default values; a list present in
// the file replaces the default list. Unknown keys are rejected.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF; that simply means "defaults".
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DockerfileBaseURL == "" {
		return errors.New("dockerfileBaseURL must not be empty")
	}
	if len(c.Targets) == 0 {
		return errors.New("at least one target is required")
	}

	seen := make(map[string]struct{}, len(c.Targets))
	for i := range c.Targets {
		t := &c.Targets[i]
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("duplicate target name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}
