// Package filesystem reads the appendix archive from local disk.
//
// The archive root holds one folder per category. Below it every level of
// a dotted appendix code is a folder named "Appendix <code>", so D34.A
// lives at "<root>/<category>/Appendix D34/Appendix D34.A". Archive
// resolves a code to its first document file and Scanner lists every
// document file for the inventory report.
package filesystem
