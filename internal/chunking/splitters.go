package chunking

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// merger packs small splits into chunks of at most size characters, carrying
// up to overlap characters of trailing splits into the next chunk.
type merger struct {
	size    int
	overlap int
}

func (m merger) merge(splits []string, separator string) []string {
	sepLen := utf8.RuneCountInString(separator)
	var docs []string
	var current []string
	total := 0

	joinedLen := func(n int) int {
		if len(current) > 0 {
			return total + n + sepLen
		}
		return total + n
	}

	for _, s := range splits {
		n := utf8.RuneCountInString(s)
		if joinedLen(n) > m.size {
			if total > m.size {
				slog.Debug("created a chunk larger than chunk_size", "size", total, "chunk_size", m.size)
			}
			if len(current) > 0 {
				if doc, ok := joinDocs(current, separator); ok {
					docs = append(docs, doc)
				}
				for len(current) > 0 && (total > m.overlap || (joinedLen(n) > m.size && total > 0)) {
					drop := utf8.RuneCountInString(current[0])
					if len(current) > 1 {
						drop += sepLen
					}
					total -= drop
					current = current[1:]
				}
			}
		}
		current = append(current, s)
		total += n
		if len(current) > 1 {
			total += sepLen
		}
	}

	if doc, ok := joinDocs(current, separator); ok {
		docs = append(docs, doc)
	}
	return docs
}

// joinDocs joins and trims; empty results are discarded.
func joinDocs(parts []string, separator string) (string, bool) {
	text := strings.TrimSpace(strings.Join(parts, separator))
	return text, text != ""
}

// splitOn splits text on a literal separator, dropping empty pieces. An empty
// separator splits into single characters.
func splitOn(text, separator string) []string {
	var parts []string
	if separator == "" {
		parts = strings.Split(text, "")
	} else {
		parts = strings.Split(text, separator)
	}
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RecursiveSplitter splits on the first separator present in the text and
// recurses into pieces that are still too large with the remaining separators.
type RecursiveSplitter struct {
	merger
	separators []string
}

// NewRecursiveSplitter creates a recursive splitter. Sizes are in characters.
func NewRecursiveSplitter(size, overlap int, separators []string) *RecursiveSplitter {
	return &RecursiveSplitter{
		merger:     merger{size: size, overlap: overlap},
		separators: separators,
	}
}

// SplitText implements TextualChunker.
func (s *RecursiveSplitter) SplitText(_ context.Context, text string) ([]string, error) {
	return s.split(text, s.separators), nil
}

func (s *RecursiveSplitter) split(text string, separators []string) []string {
	separator := ""
	var remaining []string
	if len(separators) > 0 {
		separator = separators[len(separators)-1]
	}
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	var chunks, good []string
	for _, piece := range splitOn(text, separator) {
		if utf8.RuneCountInString(piece) < s.size {
			good = append(good, piece)
			continue
		}
		if len(good) > 0 {
			chunks = append(chunks, s.merge(good, separator)...)
			good = nil
		}
		if len(remaining) == 0 {
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.split(piece, remaining)...)
		}
	}
	if len(good) > 0 {
		chunks = append(chunks, s.merge(good, separator)...)
	}
	return chunks
}

// CharacterSplitter splits on a single separator and merges the pieces.
type CharacterSplitter struct {
	merger
	separator string
}

// NewCharacterSplitter creates a character splitter. Sizes are in characters.
func NewCharacterSplitter(size, overlap int, separator string) *CharacterSplitter {
	return &CharacterSplitter{
		merger:    merger{size: size, overlap: overlap},
		separator: separator,
	}
}

// SplitText implements TextualChunker.
func (s *CharacterSplitter) SplitText(_ context.Context, text string) ([]string, error) {
	return s.merge(splitOn(text, s.separator), s.separator), nil
}
