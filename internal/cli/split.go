// split.go implements the "repodesc split" command.
//
// The split command reads one markdown document, splits it into the
// "about" and "usage" documents, and exports both to the GitHub Actions
// environment file as ABOUT_JSON and USAGE_JSON, ready for a later step
// that updates the registry listing.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/repodesc/internal/ghenv"
	"github.com/mmr-tortoise/repodesc/internal/markdown"
	"github.com/mmr-tortoise/repodesc/internal/model"
)

// Names of the exported environment variables.
const (
	AboutVar = "ABOUT_JSON"
	UsageVar = "USAGE_JSON"
)

// splitFlags holds the flag values for the split command.
type splitFlags struct {
	// githubEnv is the environment file to append to. Empty means
	// $GITHUB_ENV.
	githubEnv string

	// frontMatter strips a leading front matter block and honors its
	// usageSections key.
	frontMatter bool
}

// NewSplitCommand creates the "split" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSplitCommand() *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split <markdown-file>",
		Short: "Split a markdown document into about and usage documents",
		Long: `Split a markdown document into the "about" and "usage" documents
shown on the public ECR gallery, and export them as JSON strings to the
GitHub Actions environment file.

Sections titled "How to use this image" and "Image Variants" go to usage
(configurable with --config); everything else goes to about.

Examples:
  repodesc split README.md
  repodesc split --github-env /tmp/env README.md
  repodesc split --front-matter docs/registry.md`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.githubEnv, "github-env", "",
		"Environment file to append to (default: $"+ghenv.EnvVar+")")
	cmd.Flags().BoolVar(&flags.frontMatter, "front-matter", false,
		"Strip YAML front matter and use its usageSections, if any")

	return cmd
}

// runSplit is the main logic function for the split command.
func runSplit(path string, flags *splitFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Resolve the target first so a misconfigured job fails before doing
	// any work.
	envPath := flags.githubEnv
	if envPath == "" {
		envPath = os.Getenv(ghenv.EnvVar)
	}
	if envPath == "" {
		return model.NewCLIError(model.KindUnexpected,
			ghenv.EnvVar+" is not set; pass --github-env to name the environment file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read markdown file: %w", err)
	}

	policy := markdown.NewPolicy(cfg.UsageSections...)
	if flags.frontMatter {
		fm, body, err := markdown.StripFrontMatter(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		policy = fm.Policy(policy)
		data = body
	}

	result := markdown.Split(string(data), policy)
	logger.Debug("document split",
		"file", path,
		"sections", len(result.Sections),
		"usage_titles", policy.Titles())

	if err := ghenv.Append(envPath,
		ghenv.Var{Key: AboutVar, Value: result.About},
		ghenv.Var{Key: UsageVar, Value: result.Usage},
	); err != nil {
		return err
	}

	logger.Info("exported registry description", "env_file", envPath)
	return nil
}
