// Package memory provides in-memory implementations of driven ports.
// They back tests and runs made with history disabled.
package memory
