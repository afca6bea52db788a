package flashcard

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Common English function words that never make useful cloze terms.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "that": {}, "this": {}, "with": {}, "from": {},
	"have": {}, "has": {}, "had": {}, "was": {}, "were": {}, "are": {},
	"for": {}, "not": {}, "but": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "their": {}, "there": {}, "these": {}, "those": {},
	"then": {}, "than": {}, "them": {}, "they": {}, "your": {}, "into": {},
	"also": {}, "only": {}, "over": {}, "such": {}, "some": {}, "more": {},
	"most": {}, "other": {}, "about": {}, "been": {}, "being": {},
	"because": {}, "between": {}, "through": {}, "each": {}, "does": {},
	"very": {}, "much": {}, "many": {}, "both": {}, "after": {},
	"before": {}, "under": {}, "using": {}, "used": {},
}

// extractKeyTerms picks the terms of a sentence worth masking in a
// cloze card. Tokens are cleaned of punctuation and dropped when
// shorter than four characters or when they are stop words. A token
// qualifies when it looks like a proper noun (capitalized past the
// first word), a camelCase or snake_case identifier, or an acronym.
// When nothing qualifies the two longest remaining tokens are used, so
// a qualifying sentence always produces at least one term.
func extractKeyTerms(sentence string) []string {
	tokens := strings.Fields(sentence)

	var (
		terms         []string
		fallbacks     []string
		seenTerms     = map[string]struct{}{}
		seenFallbacks = map[string]struct{}{}
	)
	for i, token := range tokens {
		word := stripNonWord(token)
		if len(word) < 4 {
			continue
		}
		if _, stop := stopWords[strings.ToLower(word)]; stop {
			continue
		}

		if isKeyTerm(word, i) {
			if _, dup := seenTerms[word]; dup {
				continue
			}
			seenTerms[word] = struct{}{}
			terms = append(terms, word)
		} else {
			if _, dup := seenFallbacks[word]; dup {
				continue
			}
			seenFallbacks[word] = struct{}{}
			fallbacks = append(fallbacks, word)
		}
	}

	if len(terms) > 0 {
		return terms
	}

	// Fall back to the two longest tokens, ties kept in sentence order.
	sort.SliceStable(fallbacks, func(i, j int) bool {
		return len(fallbacks[i]) > len(fallbacks[j])
	})
	if len(fallbacks) > 2 {
		fallbacks = fallbacks[:2]
	}
	return fallbacks
}

func isKeyTerm(word string, position int) bool {
	runes := []rune(word)

	if strings.ContainsRune(word, '_') {
		return true
	}
	if isAcronym(runes) {
		return true
	}
	if unicode.IsUpper(runes[0]) && position > 0 {
		return true
	}
	return hasInternalUpper(runes)
}

// isAcronym reports whether the word is fully uppercase, length >= 2.
func isAcronym(runes []rune) bool {
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// hasInternalUpper detects camelCase-like words: a lowercase rune
// followed later by an uppercase one.
func hasInternalUpper(runes []rune) bool {
	seenLower := false
	for _, r := range runes {
		if unicode.IsLower(r) {
			seenLower = true
			continue
		}
		if unicode.IsUpper(r) && seenLower {
			return true
		}
	}
	return false
}

// stripNonWord removes everything except letters, digits and
// underscores from a token.
func stripNonWord(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// maskTerm replaces the first case-insensitive whole-word occurrence of
// term in sentence with "[...]". It reports whether a match was found.
// Words are compared with strings.EqualFold and spliced at their
// original offsets, so case folding that changes byte lengths (Turkish
// İ, German ẞ) cannot shift the masked range.
func maskTerm(sentence, term string) (string, bool) {
	start := 0
	for start < len(sentence) {
		r, size := utf8.DecodeRuneInString(sentence[start:])
		if !isWordRune(r) {
			start += size
			continue
		}

		end := start + size
		for end < len(sentence) {
			r, size := utf8.DecodeRuneInString(sentence[end:])
			if !isWordRune(r) {
				break
			}
			end += size
		}

		if strings.EqualFold(sentence[start:end], term) {
			return sentence[:start] + "[...]" + sentence[end:], true
		}
		start = end
	}
	return sentence, false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
