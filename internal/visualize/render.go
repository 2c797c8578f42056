package visualize

import (
	"cmp"
	"fmt"
	"html"
	"log/slog"
	"slices"
	"strings"

	"chunkwise/internal/chunking"
)

const contentTemplate = "\n<div class=\"content-box\">\n    <div class=\"text-display\"%s>%s</div>\n</div>\n"

const missingTokenCount = "Token count not provided by chunker"

// Visualizer renders chunk spans over a document as highlighted HTML.
// It holds no mutable state and is safe for concurrent use.
type Visualizer struct {
	theme Theme
}

// NewVisualizer creates a Visualizer for theme.
func NewVisualizer(theme Theme) *Visualizer {
	return &Visualizer{theme: theme}
}

// Theme returns the theme the visualizer colors with.
func (v *Visualizer) Theme() Theme {
	return v.theme
}

// span is a validated chunk range in character offsets of the rendered text.
type span struct {
	id     int
	start  int
	end    int
	tokens *int
}

type event struct {
	pos   int
	delta int
	id    int
}

// Render highlights every chunk of chunks over document. When document is nil
// the text is rebuilt from the chunks themselves. Chunk ids are positions in
// chunks; where chunks overlap, the lowest id decides color and tooltip.
// Spans that are empty or start past the end of the text are skipped.
func (v *Visualizer) Render(chunks []chunking.Chunk, document *string) (string, error) {
	if len(chunks) == 0 {
		return "", ErrEmptyChunkSet
	}

	var text []rune
	if document != nil {
		text = []rune(*document)
	} else {
		text = []rune(Reconstruct(chunks))
	}

	spans := validSpans(chunks, len(text))
	events := sweepEvents(spans)

	var b strings.Builder
	active := make(map[int]struct{})
	cursor := 0
	for _, e := range events {
		v.writeSegment(&b, text[cursor:e.pos], spans, active)
		cursor = e.pos
		if e.delta > 0 {
			active[e.id] = struct{}{}
		} else {
			delete(active, e.id)
		}
	}
	if cursor < len(text) {
		v.writeSegment(&b, text[cursor:], spans, active)
	}

	style := ""
	if v.theme.TextColor != "" {
		style = fmt.Sprintf(` style="color: %s;"`, v.theme.TextColor)
	}
	return fmt.Sprintf(contentTemplate, style, b.String()), nil
}

// Reconstruct rebuilds a document from chunks ordered by start offset,
// appending only the part of each chunk that extends past the text so far.
func Reconstruct(chunks []chunking.Chunk) string {
	sorted := slices.Clone(chunks)
	slices.SortStableFunc(sorted, func(a, b chunking.Chunk) int {
		return cmp.Compare(a.StartIndex, b.StartIndex)
	})

	var out []rune
	for _, c := range sorted {
		runes := []rune(c.Text)
		if c.StartIndex >= len(out) {
			out = append(out, runes...)
			continue
		}
		if offset := len(out) - c.StartIndex; offset < len(runes) {
			out = append(out, runes[offset:]...)
		}
	}
	return string(out)
}

func validSpans(chunks []chunking.Chunk, textLen int) map[int]span {
	spans := make(map[int]span, len(chunks))
	for i, c := range chunks {
		start, end := max(c.StartIndex, 0), max(c.EndIndex, 0)
		if start >= end || start >= textLen {
			slog.Debug("skipping chunk with unusable span",
				"chunk", i, "start", c.StartIndex, "end", c.EndIndex, "text_len", textLen)
			continue
		}
		spans[i] = span{id: i, start: start, end: min(end, textLen), tokens: c.TokenCount}
	}
	return spans
}

// sweepEvents orders span boundaries by position, with ends before starts at
// the same position so adjacent chunks do not count as overlapping.
func sweepEvents(spans map[int]span) []event {
	events := make([]event, 0, 2*len(spans))
	for _, s := range spans {
		events = append(events, event{pos: s.start, delta: 1, id: s.id}, event{pos: s.end, delta: -1, id: s.id})
	}
	slices.SortFunc(events, func(a, b event) int {
		return cmp.Or(
			cmp.Compare(a.pos, b.pos),
			cmp.Compare(a.delta, b.delta),
			cmp.Compare(a.id, b.id),
		)
	})
	return events
}

func (v *Visualizer) writeSegment(b *strings.Builder, segment []rune, spans map[int]span, active map[int]struct{}) {
	if len(segment) == 0 {
		return
	}
	escaped := strings.ReplaceAll(html.EscapeString(string(segment)), "\n", "<br>")
	if len(active) == 0 {
		b.WriteString(escaped)
		return
	}

	primary := spans[minKey(active)]
	overlap := len(active) > 1
	color := v.theme.ColorFor(primary.id)
	if overlap {
		color = Darken(color, OverlapDarkenFactor)
	}

	fmt.Fprintf(b, `<span style="background-color: %s;" title="%s">`, color, html.EscapeString(tooltip(primary, overlap)))
	b.WriteString(escaped)
	b.WriteString("</span>")
}

func tooltip(s span, overlap bool) string {
	tokens := missingTokenCount
	if s.tokens != nil && *s.tokens != 0 {
		tokens = fmt.Sprint(*s.tokens)
	}
	title := fmt.Sprintf("Chunk %d | Start: %d | End: %d | Tokens: %s", s.id, s.start, s.end, tokens)
	if overlap {
		title += " (Overlap)"
	}
	return title
}

func minKey(set map[int]struct{}) int {
	first := true
	lowest := 0
	for k := range set {
		if first || k < lowest {
			lowest, first = k, false
		}
	}
	return lowest
}
