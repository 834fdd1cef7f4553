// Package render formats tabular command output with go-pretty and decides
// whether that output may carry ANSI colour.
package render
