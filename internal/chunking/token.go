package chunking

import (
	"context"
	"regexp"
	"unicode"
)

var wordToken = regexp.MustCompile(`\S+\s*`)

// TokenChunker produces fixed-size token windows with a configurable overlap.
// It reports exact offsets and token counts.
type TokenChunker struct {
	size      int
	overlap   int
	tokenizer string
}

// NewTokenChunker creates a token chunker. tokenizer is TokenizerCharacter or
// TokenizerWord.
func NewTokenChunker(size, overlap int, tokenizer string) *TokenChunker {
	return &TokenChunker{size: size, overlap: overlap, tokenizer: tokenizer}
}

// Chunk implements StructuredChunker.
func (c *TokenChunker) Chunk(_ context.Context, text string) ([]Chunk, error) {
	runes := []rune(text)
	tokens := c.tokenize(text, runes)
	if len(tokens) == 0 {
		return []Chunk{}, nil
	}

	step := max(c.size-c.overlap, 1)
	var chunks []Chunk
	for start := 0; start < len(tokens); start += step {
		end := min(start+c.size, len(tokens))
		span := Span{Start: tokens[start].Start, End: tokens[end-1].End}
		count := end - start
		chunks = append(chunks, Chunk{
			Text:       string(runes[span.Start:span.End]),
			StartIndex: span.Start,
			EndIndex:   span.End,
			TokenCount: &count,
		})
		if end == len(tokens) {
			break
		}
	}
	return chunks, nil
}

// tokenize returns token spans in character offsets. Word tokens absorb their
// trailing whitespace, and the first one also absorbs any leading whitespace,
// so consecutive tokens tile the text.
func (c *TokenChunker) tokenize(text string, runes []rune) []Span {
	if c.tokenizer != TokenizerWord {
		spans := make([]Span, len(runes))
		for i := range runes {
			spans[i] = Span{Start: i, End: i + 1}
		}
		return spans
	}

	matches := wordToken.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, byteSpanToRunes(text, m[0], m[1]))
	}
	if len(spans) > 0 {
		spans[0].Start = 0
	}
	return spans
}

// SentenceChunker groups whole sentences into chunks of at most size
// characters. A chunk always holds at least minSentences sentences, even if
// that exceeds size.
type SentenceChunker struct {
	size             int
	minSentences     int
	minSentenceChars int
}

// NewSentenceChunker creates a sentence chunker. Sentences shorter than
// minSentenceChars are merged into the sentence that follows them.
func NewSentenceChunker(size, minSentences, minSentenceChars int) *SentenceChunker {
	return &SentenceChunker{size: size, minSentences: max(minSentences, 1), minSentenceChars: minSentenceChars}
}

// Chunk implements StructuredChunker.
func (c *SentenceChunker) Chunk(_ context.Context, text string) ([]Chunk, error) {
	runes := []rune(text)
	sentences := c.sentences(runes)

	var chunks []Chunk
	for i := 0; i < len(sentences); {
		start := sentences[i].Start
		j := i
		for j < len(sentences) {
			n := j - i
			if n >= c.minSentences && sentences[j].End-start > c.size {
				break
			}
			j++
		}
		end := sentences[j-1].End
		count := end - start
		chunks = append(chunks, Chunk{
			Text:       string(runes[start:end]),
			StartIndex: start,
			EndIndex:   end,
			TokenCount: &count,
		})
		i = j
	}
	if chunks == nil {
		chunks = []Chunk{}
	}
	return chunks, nil
}

// sentences splits runes after '.', '!', '?' or newline, with trailing
// whitespace kept on the sentence.
func (c *SentenceChunker) sentences(runes []rune) []Span {
	var raw []Span
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?', '\n':
		default:
			continue
		}
		end := i + 1
		for end < len(runes) && unicode.IsSpace(runes[end]) {
			end++
		}
		raw = append(raw, Span{Start: start, End: end})
		start = end
		i = end - 1
	}
	if start < len(runes) {
		raw = append(raw, Span{Start: start, End: len(runes)})
	}

	merged := make([]Span, 0, len(raw))
	pending := -1
	for _, s := range raw {
		if pending >= 0 {
			s.Start = pending
			pending = -1
		}
		if s.Len() < c.minSentenceChars {
			pending = s.Start
			continue
		}
		merged = append(merged, s)
	}
	if pending >= 0 {
		if len(merged) > 0 {
			merged[len(merged)-1].End = len(runes)
		} else {
			merged = append(merged, Span{Start: pending, End: len(runes)})
		}
	}
	return merged
}

// textOnly hides the offsets of a structured chunker.
type textOnly struct {
	inner StructuredChunker
}

// TextOnly adapts a StructuredChunker into a TextualChunker that reports only
// chunk text, as text splitting libraries commonly do.
func TextOnly(c StructuredChunker) TextualChunker {
	return textOnly{inner: c}
}

func (t textOnly) SplitText(ctx context.Context, text string) ([]string, error) {
	chunks, err := t.inner.Chunk(ctx, text)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return texts, nil
}
