package cli

import (
	"errors"
	"io/fs"

	"github.com/mmr-tortoise/repodesc/internal/matrix"
	"github.com/mmr-tortoise/repodesc/internal/model"
)

// classify maps an error onto the failure taxonomy:
//
//   - input-not-found: a file that does not exist
//   - malformed-json:  a matrix file that cannot be decoded
//   - missing-field:   a required matrix key that is absent or empty
//   - unexpected:      everything else
//
// Errors that already are a *model.CLIError are returned unchanged.
func classify(err error) *model.CLIError {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var parseErr *matrix.ParseError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return model.WrapCLIError(model.KindInputNotFound, "file not found", err)
	case errors.As(err, &parseErr):
		return model.WrapCLIError(model.KindMalformedJSON,
			"failed to parse JSON file '"+parseErr.Path+"', please check its syntax", parseErr.Err)
	case errors.Is(err, matrix.ErrMissingField):
		return model.WrapCLIError(model.KindMissingField, "invalid JSON structure", err)
	default:
		return model.WrapCLIError(model.KindUnexpected, "error processing data", err)
	}
}
