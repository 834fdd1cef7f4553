package textutil

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode names a case mapping.
type CaseMode string

const (
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
	CaseTitle CaseMode = "title"
)

// CaseModes lists the supported modes in help order.
func CaseModes() []string {
	return []string{string(CaseUpper), string(CaseLower), string(CaseTitle)}
}

// ChangeCase maps text according to mode.
func ChangeCase(text string, mode CaseMode) (string, error) {
	var caser cases.Caser
	switch mode {
	case CaseUpper:
		caser = cases.Upper(language.Und)
	case CaseLower:
		caser = cases.Lower(language.Und)
	case CaseTitle:
		caser = cases.Title(language.Und)
	default:
		return "", fmt.Errorf("unknown case mode %q", mode)
	}
	return caser.String(text), nil
}

// Shout upper-cases text and appends three exclamation marks.
func Shout(text string) string {
	return cases.Upper(language.Und).String(text) + "!!!"
}
