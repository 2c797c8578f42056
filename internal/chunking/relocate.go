package chunking

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FuzzyAcceptScore is the minimum token-sort ratio a sentence needs before the
// fuzzy fallback reports it as the chunk's location.
const FuzzyAcceptScore = 98

// sentenceBoundary splits a document into sentence-like segments.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s*|\n`)

// Locate finds target inside document and returns its character span.
//
// Strategies are tried in order and the first hit wins:
//  1. exact substring match (after dropping one trailing period),
//  2. case-insensitive match of the target's words separated by any whitespace,
//  3. the document sentence that best matches by token-sort ratio, accepted only
//     at FuzzyAcceptScore or above.
//
// The second return value is false when no strategy succeeds.
func Locate(document, target string) (Span, bool) {
	target = strings.TrimSuffix(target, ".")

	if i := strings.Index(document, target); i >= 0 {
		return byteSpanToRunes(document, i, i+len(target)), true
	}

	if start, end, ok := locateIgnoringWhitespace(document, target); ok {
		return byteSpanToRunes(document, start, end), true
	}

	if start, end, ok := locateFuzzySentence(document, target); ok {
		return byteSpanToRunes(document, start, end), true
	}

	return Span{}, false
}

// locateIgnoringWhitespace matches the words of target in order, allowing any
// run of whitespace (or none) between them. Returns byte offsets.
func locateIgnoringWhitespace(document, target string) (int, int, bool) {
	words := strings.Fields(target)
	if len(words) == 0 {
		return 0, 0, false
	}

	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	re, err := regexp.Compile(`(?i)` + strings.Join(quoted, `\s*`))
	if err != nil {
		return 0, 0, false
	}

	loc := re.FindStringIndex(document)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// locateFuzzySentence scores every sentence of document against target and
// returns the byte span of the first best-scoring one if it clears
// FuzzyAcceptScore. Ties keep the earliest sentence.
func locateFuzzySentence(document, target string) (int, int, bool) {
	query := sortTokens(processForScoring(target))
	queryLen := utf8.RuneCountInString(query)
	if queryLen == 0 {
		return 0, 0, false
	}

	best, bestScore := "", -1
	for _, sentence := range sentenceBoundary.Split(document, -1) {
		candidate := sortTokens(processForScoring(sentence))
		// Skip sentences whose length alone rules out acceptance.
		if ratioCeiling(queryLen, utf8.RuneCountInString(candidate)) < FuzzyAcceptScore {
			continue
		}
		if score := ratio(query, candidate); score > bestScore {
			best, bestScore = sentence, score
		}
	}

	if bestScore < FuzzyAcceptScore {
		return 0, 0, false
	}

	start := strings.Index(document, best)
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(best), true
}

// byteSpanToRunes converts a byte range of s into character offsets.
func byteSpanToRunes(s string, start, end int) Span {
	runeStart := utf8.RuneCountInString(s[:start])
	return Span{
		Start: runeStart,
		End:   runeStart + utf8.RuneCountInString(s[start:end]),
	}
}
