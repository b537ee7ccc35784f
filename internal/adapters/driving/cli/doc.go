// Package cli implements the closeout command line.
//
// This is a driving adapter in the hexagonal architecture. Commands are
// package-level cobra commands registered in init(). They reach the core
// only through the driving ports held in package variables, which main
// fills through a Wiring function and tests replace with mocks.
package cli
