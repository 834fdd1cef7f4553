// Package textutil holds the string transformations behind the text commands:
// word counting, rune-wise reversal, repetition, case mapping through
// golang.org/x/text/cases, and a term-frequency similarity score.
//
// Case mapping is locale-neutral (language.Und) so results do not depend on
// the host's locale settings.
package textutil
