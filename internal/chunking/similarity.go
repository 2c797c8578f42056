package chunking

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// processForScoring lowercases s and turns every rune that is not a letter,
// digit or underscore into a space, then trims.
func processForScoring(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.TrimSpace(mapped)
}

// sortTokens returns the whitespace-separated tokens of s sorted and joined by
// single spaces.
func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenSortRatio scores two strings from 0 to 100 independently of word order.
// Both sides are processed and their tokens sorted before an indel similarity
// (2*LCS / total length) is taken.
func tokenSortRatio(a, b string) int {
	sa := sortTokens(processForScoring(a))
	sb := sortTokens(processForScoring(b))
	return ratio(sa, sb)
}

// ratio is 100 * 2*LCS(a,b) / (len(a)+len(b)), rounded half to even.
// Empty input scores 0.
func ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * float64(2*lcsLength(a, b, la, lb)) / float64(la+lb)))
}

// maxMatrixCells bounds the size of the full LCS table edlib allocates.
const maxMatrixCells = 1 << 16

// lcsLength returns the length of the longest common subsequence of a and b,
// whose rune counts are la and lb. Large inputs are scored with two rolling
// rows so memory stays linear in the shorter string.
func lcsLength(a, b string, la, lb int) int {
	if (la+1)*(lb+1) <= maxMatrixCells {
		return edlib.LCS(a, b)
	}

	ra, rb := []rune(a), []rune(b)
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			switch {
			case ra[i-1] == rb[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// ratioCeiling is the best score two strings of the given lengths could reach,
// which is when the shorter is a subsequence of the longer.
func ratioCeiling(la, lb int) int {
	if la == 0 || lb == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * float64(2*min(la, lb)) / float64(la+lb)))
}
