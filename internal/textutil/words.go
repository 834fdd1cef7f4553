package textutil

import "strings"

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Reverse reverses text rune by rune, so multi-byte characters stay intact.
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Repeat joins times copies of text with separator. Non-positive counts yield
// an empty string.
func Repeat(text string, times int, separator string) string {
	if times <= 0 {
		return ""
	}
	parts := make([]string, times)
	for i := range parts {
		parts[i] = text
	}
	return strings.Join(parts, separator)
}
