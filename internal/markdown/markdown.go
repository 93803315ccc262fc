package markdown

import (
	"github.com/mmr-tortoise/repodesc/internal/model"
)

// Result is the outcome of splitting one document.
type Result struct {
	// About holds the preamble and every section not selected for usage.
	About string

	// Usage holds the sections selected by the policy.
	Usage string

	// Sections lists the parsed sections in output order.
	Sections []model.Section
}

// Split normalizes, sections and routes a document in one pass. It never
// fails: any input yields a Result, possibly with empty documents.
func Split(doc string, policy Policy) Result {
	preamble, sections := SplitSections(NormalizeHeadings(doc))
	about, usage := Route(preamble, sections, policy)
	return Result{
		About:    about,
		Usage:    usage,
		Sections: sections.All(),
	}
}
