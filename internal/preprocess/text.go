package preprocess

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize strips punctuation, lowercases the remainder and splits on
// whitespace, returning the surviving tokens in their original order.
// Punctuation is removed before splitting, so characters joined by it fuse
// into one token: "2.5" tokenizes to "25". Input is NFC-normalized first so
// composed and decomposed forms tokenize alike.
func Tokenize(text string) []string {
	fields := strings.Fields(RemovePunctuation(text))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// RemovePunctuation returns text with punctuation removed. Letters, digits
// and whitespace survive with their original casing and spacing.
func RemovePunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFC.String(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RemoveStopwords splits text on whitespace, drops tokens that exactly match
// an entry in stopwords, and rejoins the survivors with single spaces.
// Matching is case-sensitive and relative order is preserved.
func RemoveStopwords(text string, stopwords []string) string {
	drop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		drop[w] = struct{}{}
	}

	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := drop[w]; !ok {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
