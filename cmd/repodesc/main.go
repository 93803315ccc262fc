// Package main is the entry point for the repodesc CLI.
//
// repodesc renders container registry descriptions: it splits registry
// documentation into the "about" and "usage" documents of the public ECR
// gallery and fills the Docker Hub description template from the CI build
// matrix. All functionality lives in the internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"github.com/mmr-tortoise/repodesc/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Execute handles error logging and exit codes.
	cli.Execute(cli.NewRootCommand())
}
