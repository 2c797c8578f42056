package chunking

import (
	"context"
	"strings"
)

// recursiveLevels are tried in order: paragraphs, lines, sentences, words.
// Below the last level text is cut into windows of size tokens.
var recursiveLevels = [][]string{
	{"\n\n"},
	{"\n"},
	{". ", "! ", "? "},
	{" "},
}

// RecursiveChunker splits text at the coarsest delimiter that yields pieces
// within size, recursing into pieces that are still too large. Delimiters stay
// attached to the piece they end, so chunks tile the text and report exact
// offsets. Pieces shorter than minChars are merged into the piece after them.
type RecursiveChunker struct {
	size      int
	minChars  int
	tokenizer string
}

// NewRecursiveChunker creates a recursive chunker. size is measured in tokens
// of the given tokenizer (TokenizerCharacter or TokenizerWord).
func NewRecursiveChunker(size, minChars int, tokenizer string) *RecursiveChunker {
	return &RecursiveChunker{size: size, minChars: minChars, tokenizer: tokenizer}
}

// Chunk implements StructuredChunker.
func (c *RecursiveChunker) Chunk(_ context.Context, text string) ([]Chunk, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return []Chunk{}, nil
	}

	spans := c.split(runes, Span{Start: 0, End: len(runes)}, 0)
	chunks := make([]Chunk, 0, len(spans))
	for _, s := range spans {
		count := c.measure(runes, s)
		chunks = append(chunks, Chunk{
			Text:       string(runes[s.Start:s.End]),
			StartIndex: s.Start,
			EndIndex:   s.End,
			TokenCount: &count,
		})
	}
	return chunks, nil
}

// measure counts the tokens of span.
func (c *RecursiveChunker) measure(runes []rune, span Span) int {
	if c.tokenizer == TokenizerWord {
		return len(strings.Fields(string(runes[span.Start:span.End])))
	}
	return span.Len()
}

func (c *RecursiveChunker) split(runes []rune, span Span, level int) []Span {
	if c.measure(runes, span) <= c.size {
		return []Span{span}
	}
	if level == len(recursiveLevels) {
		return c.windows(runes, span)
	}

	var out []Span
	current := Span{Start: span.Start, End: span.Start}
	flush := func() {
		if current.Len() > 0 {
			out = append(out, current)
		}
		current = Span{Start: current.End, End: current.End}
	}

	for _, piece := range c.mergeShort(splitKeeping(runes, span, recursiveLevels[level])) {
		if c.measure(runes, piece) > c.size {
			flush()
			out = append(out, c.split(runes, piece, level+1)...)
			current = Span{Start: piece.End, End: piece.End}
			continue
		}
		if current.Len() > 0 && c.measure(runes, Span{Start: current.Start, End: piece.End}) > c.size {
			flush()
		}
		current.End = piece.End
	}
	flush()
	return out
}

// mergeShort folds runs of pieces shorter than minChars into the next piece
// that is long enough. Merged pieces may exceed size; split recurses into them.
func (c *RecursiveChunker) mergeShort(pieces []Span) []Span {
	merged := make([]Span, 0, len(pieces))
	pending := -1
	for _, p := range pieces {
		if pending >= 0 {
			p.Start = pending
		}
		if p.Len() < c.minChars {
			pending = p.Start
			continue
		}
		pending = -1
		merged = append(merged, p)
	}
	if pending >= 0 {
		merged = append(merged, Span{Start: pending, End: pieces[len(pieces)-1].End})
	}
	return merged
}

// splitKeeping cuts span after every occurrence of a delimiter. The pieces
// tile span exactly.
func splitKeeping(runes []rune, span Span, delimiters []string) []Span {
	delims := make([][]rune, len(delimiters))
	for i, d := range delimiters {
		delims[i] = []rune(d)
	}

	var pieces []Span
	start := span.Start
	for i := span.Start; i < span.End; i++ {
		for _, d := range delims {
			if i+len(d) <= span.End && hasRunesAt(runes, i, d) {
				pieces = append(pieces, Span{Start: start, End: i + len(d)})
				start = i + len(d)
				i = start - 1
				break
			}
		}
	}
	if start < span.End {
		pieces = append(pieces, Span{Start: start, End: span.End})
	}
	return pieces
}

func hasRunesAt(runes []rune, i int, d []rune) bool {
	for j, r := range d {
		if runes[i+j] != r {
			return false
		}
	}
	return true
}

// windows cuts span into consecutive runs of at most size tokens.
func (c *RecursiveChunker) windows(runes []rune, span Span) []Span {
	sub := runes[span.Start:span.End]
	tokens := (&TokenChunker{tokenizer: c.tokenizer}).tokenize(string(sub), sub)

	var out []Span
	for i := 0; i < len(tokens); i += c.size {
		last := tokens[min(i+c.size, len(tokens))-1]
		out = append(out, Span{Start: span.Start + tokens[i].Start, End: span.Start + last.End})
	}
	return out
}
