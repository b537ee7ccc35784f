// Package report renders match runs and archive inventories.
//
// This is a driven adapter in the hexagonal architecture. The text and
// JSON writers implement driven.ReportWriter; Registry looks them up by
// format name for the CLI's --format flag.
package report
