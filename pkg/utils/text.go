package utils

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	urlPattern      = regexp.MustCompile(`http\S+|www\S+`)
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s.,!?-]`)
)

// CleanText removes URL-like tokens and any character that is not a word
// character, whitespace or one of ". , ! ? -", then trims the result.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = urlPattern.ReplaceAllString(text, "")
	text = disallowedChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// StripHTML reduces an HTML fragment to its visible text with collapsed whitespace.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
