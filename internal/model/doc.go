// Package model defines the domain types and value objects for the
// repodesc CLI.
//
// This package contains pure data structures with no external dependencies.
// Sections, routing results and error kinds are transient values created
// per invocation and discarded once the description files are written.
// There is no persistent state.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
