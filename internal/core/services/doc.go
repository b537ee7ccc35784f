// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Document Matcher lives here: it selects an appendix code for a
// required document (exact title, then volume number, then fuzzy title
// similarity) and asks the archive to resolve that code to a file.
package services
