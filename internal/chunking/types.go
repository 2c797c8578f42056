package chunking

import "fmt"

// Chunk is a span of a source document together with its position metadata.
// StartIndex and EndIndex are character (rune) offsets into the document the
// chunk was produced from.
type Chunk struct {
	Text       string `json:"text"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	TokenCount *int   `json:"token_count"`
}

// Span is a half-open [Start, End) character range.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// ChunkPayload is the wire shape of a chunk received from callers that may
// omit fields. Use ToChunks to turn a batch into Chunks.
type ChunkPayload struct {
	Text       *string `json:"text"`
	StartIndex *int    `json:"start_index"`
	EndIndex   *int    `json:"end_index"`
	TokenCount *int    `json:"token_count"`
}

// ToChunks converts payloads into chunks, keeping their positions so chunk ids
// stay stable. When requireOffsets is true (the document has to be rebuilt from
// the chunks themselves) a missing text or offset is a MalformedChunkError.
// Otherwise a chunk without offsets becomes an empty span that renderers skip.
func ToChunks(payloads []ChunkPayload, requireOffsets bool) ([]Chunk, error) {
	chunks := make([]Chunk, len(payloads))
	for i, p := range payloads {
		if requireOffsets {
			switch {
			case p.Text == nil:
				return nil, &MalformedChunkError{Index: i, Field: "text"}
			case p.StartIndex == nil:
				return nil, &MalformedChunkError{Index: i, Field: "start_index"}
			case p.EndIndex == nil:
				return nil, &MalformedChunkError{Index: i, Field: "end_index"}
			}
		}

		var c Chunk
		if p.Text != nil {
			c.Text = *p.Text
		}
		if p.StartIndex != nil && p.EndIndex != nil {
			c.StartIndex = *p.StartIndex
			c.EndIndex = *p.EndIndex
		}
		if p.TokenCount != nil {
			n := *p.TokenCount
			c.TokenCount = &n
		}
		chunks[i] = c
	}
	return chunks, nil
}

// String renders a short description used in log lines.
func (c Chunk) String() string {
	return fmt.Sprintf("chunk[%d:%d] %q", c.StartIndex, c.EndIndex, preview(c.Text, 40))
}

// preview truncates s to at most n runes.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
