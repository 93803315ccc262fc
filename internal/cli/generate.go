// generate.go implements the "repodesc generate" command.
//
// The generate command renders the registry descriptions from a template
// and the CI build matrix:
//  1. Load the build matrix and the template
//  2. Render a tag bullet per matrix entry, grouped by release channel
//  3. Fill the template once per registry target
//  4. Write the full description and/or the about/usage pair per target
//
// Everything is rendered before the first file is written, so a broken
// matrix entry leaves no partial output behind.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/repodesc/internal/describe"
	"github.com/mmr-tortoise/repodesc/internal/markdown"
	"github.com/mmr-tortoise/repodesc/internal/matrix"
)

// generateFlags holds the flag values for the generate command.
type generateFlags struct {
	// outputDir is the directory receiving the rendered files.
	outputDir string
}

// NewGenerateCommand creates the "generate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate <json-matrix-file> <template-file>",
		Short: "Render registry descriptions from a build matrix and template",
		Long: `Render the registry descriptions from the CI build matrix and a
markdown template.

The template may use these placeholders:
  {update_date}                 today's date (YYYY-MM-DD)
  {official_releases}           tag bullets of official releases
  {release_candidates_section}  "## Release candidates" block, if any
  {unstable_section}            "## Latest unstable" block, if any
  {container_repo_path}         repository path, e.g. valkey/valkey
  {container_image}             full image name, e.g. docker.io/valkey/valkey

By default this writes dockerhub-description.md, ecr-about.md and
ecr-usage.md to the current directory.

Examples:
  repodesc generate matrix.json description-template.md
  repodesc generate --output-dir out matrix.json description-template.md`,

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVar(&flags.outputDir, "output-dir", ".", "Directory to write the rendered files to")

	return cmd
}

// runGenerate is the main logic function for the generate command.
func runGenerate(out io.Writer, matrixPath, templatePath string, flags *generateFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := matrix.Load(matrixPath)
	if err != nil {
		return err
	}
	logger.Debug("matrix loaded", "file", matrixPath, "entries", len(m.Include))

	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	blocks, err := matrix.Group(m, cfg.DockerfileBaseURL)
	if err != nil {
		return err
	}
	logger.Debug("matrix entries grouped",
		"official", len(blocks.Official),
		"release_candidates", len(blocks.ReleaseCandidates),
		"unstable", len(blocks.Unstable))

	renderer := &describe.Renderer{
		Template: string(tmpl),
		Blocks:   blocks,
		Policy:   markdown.NewPolicy(cfg.UsageSections...),
		Now:      now,
	}
	files, err := renderer.Outputs(cfg.Targets)
	if err != nil {
		return err
	}

	for _, f := range files {
		path, err := f.Write(flags.outputDir)
		if err != nil {
			return err
		}
		logger.Debug("description written", "target", f.Target, "path", path, "bytes", len(f.Content))
		fmt.Fprintf(out, "Generated %s\n", f.Path)
	}
	return nil
}
