// Package report formats per-file outcomes for terminal display.
//
// Each file gets one line: the filename, a dotted separator aligning every
// status to the longest filename in the batch, then a success marker or the
// first error. Remaining errors print on subsequent lines indented under the
// status column, and removal warnings appear as separate advisory lines that
// never change a success into a failure. Output is color-coded with ANSI
// escapes when stdout is a terminal and plain otherwise.
package report
