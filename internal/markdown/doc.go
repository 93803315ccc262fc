// Package markdown splits registry documentation into the "about" and
// "usage" documents shown on container registry listings.
//
// The pipeline runs in three steps:
//
//   - NormalizeHeadings rewrites underline-style headings ("Title" over a
//     line of hyphens) into "## Title".
//   - SplitSections cuts the document at every top-level "# " heading into
//     an ordered set of sections, lifting any "## Latest unstable"
//     subsection out into a section of its own.
//   - Route sends each section to "usage" or "about" according to a Policy.
//
// Split runs all three. Every input produces a result: a document without
// headings becomes a preamble-only "about" and an empty "usage".
//
// Heading detection is a line scanner with named predicates instead of a
// compound regular expression, so the underline and carriage-return rules
// stay easy to audit.
package markdown
