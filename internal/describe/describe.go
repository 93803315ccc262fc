// Package describe renders registry descriptions from a markdown template
// and the grouped tag bullets of the build matrix.
//
// One template is rendered once per registry target, with the target's
// repository path and image name filled in. Targets that show the
// description as a single document get the full rendering; targets that
// show separate "about" and "usage" fields get it split by the markdown
// package.
package describe

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mmr-tortoise/repodesc/internal/config"
	"github.com/mmr-tortoise/repodesc/internal/markdown"
	"github.com/mmr-tortoise/repodesc/internal/matrix"
)

// dateLayout formats the update date placeholder (YYYY-MM-DD).
const dateLayout = time.DateOnly

// File is one rendered output.
type File struct {
	// Target is the name of the target the file belongs to.
	Target string

	// Path is the file name, relative to the output directory.
	Path string

	// Content is written verbatim.
	Content string
}

// Renderer fills the description template for registry targets.
type Renderer struct {
	// Template is the description template text.
	Template string

	// Blocks are the grouped tag bullets.
	Blocks matrix.Blocks

	// Policy routes sections of split targets.
	Policy markdown.Policy

	// Now returns the update date. Defaults to time.Now.
	Now func() time.Time
}

// Render fills the template for one target.
func (r *Renderer) Render(target config.Target) (string, error) {
	repoPath, err := target.RepoPath()
	if err != nil {
		return "", err
	}
	image, err := target.ImageName()
	if err != nil {
		return "", err
	}

	now := r.Now
	if now == nil {
		now = time.Now
	}

	content, err := Fill(r.Template, map[string]string{
		PlaceholderUpdateDate:        now().Format(dateLayout),
		PlaceholderOfficialReleases:  r.Blocks.OfficialSection(),
		PlaceholderReleaseCandidates: r.Blocks.ReleaseCandidatesSection(),
		PlaceholderUnstable:          r.Blocks.UnstableSection(),
		PlaceholderRepoPath:          repoPath,
		PlaceholderImage:             image,
	})
	if err != nil {
		return "", fmt.Errorf("target %q: %w", target.Name, err)
	}
	return content, nil
}

// Outputs renders every target and returns the files to write, in target
// order: the full description first, then the about/usage pair. Nothing
// is returned if any target fails.
func (r *Renderer) Outputs(targets []config.Target) ([]File, error) {
	var files []File

	for _, target := range targets {
		content, err := r.Render(target)
		if err != nil {
			return nil, err
		}

		if target.Description != "" {
			files = append(files, File{Target: target.Name, Path: target.Description, Content: content})
		}
		if target.SplitsSections() {
			result := markdown.Split(content, r.Policy)
			files = append(files,
				File{Target: target.Name, Path: target.About, Content: result.About},
				File{Target: target.Name, Path: target.Usage, Content: result.Usage},
			)
		}
	}

	return files, nil
}

// Write stores the file under dir and returns the path written.
func (f File) Write(dir string) (string, error) {
	path := filepath.Join(dir, f.Path)
	if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
