package chunking

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// MarkdownSplitter cuts markdown at heading lines, then merges sections that
// are too small and splits sections that are too large. Chunk text is taken
// verbatim from the source, so relocation finds it exactly.
type MarkdownSplitter struct {
	parser  goldmark.Markdown
	maxSize int
	minSize int
}

// NewMarkdownSplitter creates a markdown splitter. Sizes are in characters.
func NewMarkdownSplitter(maxSize, minSize int) *MarkdownSplitter {
	return &MarkdownSplitter{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
		maxSize: maxSize,
		minSize: minSize,
	}
}

// section is a byte range of the source document.
type section struct {
	start, end int
}

// SplitText implements TextualChunker.
func (s *MarkdownSplitter) SplitText(_ context.Context, doc string) ([]string, error) {
	if strings.TrimSpace(doc) == "" {
		return []string{}, nil
	}

	source := []byte(doc)
	root := s.parser.Parser().Parse(text.NewReader(source))
	sections := s.mergeSmall(doc, cutAt(len(doc), headingOffsets(root, source)))

	var chunks []string
	for _, sec := range sections {
		body := doc[sec.start:sec.end]
		if utf8.RuneCountInString(body) > s.maxSize {
			chunks = append(chunks, s.splitLarge(body)...)
			continue
		}
		chunks = append(chunks, body)
	}

	out := chunks[:0]
	for _, c := range chunks {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

// headingOffsets returns the byte offset of the start of every heading line.
func headingOffsets(root ast.Node, source []byte) []int {
	var offsets []int
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		start := heading.Lines().At(0).Start
		for start > 0 && source[start-1] != '\n' {
			start--
		}
		offsets = append(offsets, start)
		return ast.WalkSkipChildren, nil
	})
	sort.Ints(offsets)
	return offsets
}

// cutAt splits [0, n) at the given offsets, dropping empty ranges.
func cutAt(n int, offsets []int) []section {
	var sections []section
	prev := 0
	for _, off := range append(offsets, n) {
		if off > prev {
			sections = append(sections, section{start: prev, end: off})
			prev = off
		}
	}
	return sections
}

// mergeSmall folds sections shorter than minSize into the following section
// while the result stays within maxSize.
func (s *MarkdownSplitter) mergeSmall(doc string, sections []section) []section {
	var result []section
	for i := 0; i < len(sections); i++ {
		current := sections[i]
		for i+1 < len(sections) && runeLen(doc, current) < s.minSize {
			merged := section{start: current.start, end: sections[i+1].end}
			if runeLen(doc, merged) > s.maxSize {
				break
			}
			current = merged
			i++
		}
		result = append(result, current)
	}
	return result
}

func runeLen(doc string, sec section) int {
	return utf8.RuneCountInString(strings.TrimSpace(doc[sec.start:sec.end]))
}

// splitLarge breaks body into pieces of at most maxSize characters, preferring
// paragraph, then line, then sentence boundaries.
func (s *MarkdownSplitter) splitLarge(body string) []string {
	runes := []rune(body)
	var pieces []string
	for start := 0; start < len(runes); {
		end := start + s.maxSize
		if end >= len(runes) {
			pieces = append(pieces, string(runes[start:]))
			break
		}

		window := string(runes[start:end])
		cut := end
		if i := strings.LastIndex(window, "\n\n"); i > 0 {
			cut = start + utf8.RuneCountInString(window[:i]) + 2
		} else if i := strings.LastIndex(window, "\n"); i > 0 {
			cut = start + utf8.RuneCountInString(window[:i]) + 1
		} else if i := strings.LastIndex(window, ". "); i > 0 {
			cut = start + utf8.RuneCountInString(window[:i]) + 2
		}

		pieces = append(pieces, string(runes[start:cut]))
		start = cut
	}
	return pieces
}
