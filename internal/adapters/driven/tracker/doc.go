// Package tracker reads and writes the document tracker as CSV.
//
// This is a driven adapter in the hexagonal architecture. It implements
// driven.TrackerStore. Header names are matched case-insensitively and a
// UTF-8 byte order mark on the first header is ignored.
package tracker
