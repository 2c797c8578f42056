package chunking

import (
	"context"
	"fmt"

	"chunkwise/internal/contextutil"
)

// TextualChunker splits text and reports only the chunk strings.
type TextualChunker interface {
	SplitText(ctx context.Context, text string) ([]string, error)
}

// StructuredChunker splits text and reports offsets and token counts itself.
type StructuredChunker interface {
	Chunk(ctx context.Context, text string) ([]Chunk, error)
}

// Handle wraps exactly one chunker capability. Build it with Textual or
// Structured; the zero Handle is invalid.
type Handle struct {
	textual    TextualChunker
	structured StructuredChunker
}

// Textual wraps a chunker whose output needs relocation.
func Textual(c TextualChunker) Handle {
	return Handle{textual: c}
}

// Structured wraps a chunker whose output is used as-is.
func Structured(c StructuredChunker) Handle {
	return Handle{structured: c}
}

// IsTextual reports whether the handle's chunks go through relocation.
func (h Handle) IsTextual() bool {
	return h.textual != nil
}

// Assembly is the result of running a chunker over a document.
type Assembly struct {
	// Chunks are in the order the chunker produced them.
	Chunks []Chunk
	// Failures lists textual chunks that could not be relocated and were dropped.
	Failures []RelocationFailure
}

// relocation is the outcome of placing one textual chunk.
type relocation struct {
	chunk Chunk
	err   error
}

// Assemble runs the chunker behind h over document and returns chunks with
// offsets. Chunks from a textual chunker are relocated with Locate; any that
// cannot be found are dropped and reported in Assembly.Failures.
// Only errors from the chunker itself are returned.
func Assemble(ctx context.Context, document string, h Handle) (Assembly, error) {
	switch {
	case h.structured != nil:
		chunks, err := h.structured.Chunk(ctx, document)
		if err != nil {
			return Assembly{}, fmt.Errorf("structured chunker failed: %w", err)
		}
		return Assembly{Chunks: chunks}, nil

	case h.textual != nil:
		texts, err := h.textual.SplitText(ctx, document)
		if err != nil {
			return Assembly{}, fmt.Errorf("textual chunker failed: %w", err)
		}
		return collect(ctx, texts, relocateAll(document, texts)), nil

	default:
		return Assembly{}, fmt.Errorf("%w: empty chunker handle", ErrInvalidConfig)
	}
}

func relocateAll(document string, texts []string) []relocation {
	results := make([]relocation, len(texts))
	for i, text := range texts {
		span, ok := Locate(document, text)
		if !ok {
			results[i] = relocation{err: ErrRelocationNotFound}
			continue
		}
		results[i] = relocation{chunk: Chunk{
			Text:       text,
			StartIndex: span.Start,
			EndIndex:   span.End,
		}}
	}
	return results
}

func collect(ctx context.Context, texts []string, results []relocation) Assembly {
	logger := contextutil.LoggerFromContext(ctx)

	out := Assembly{Chunks: make([]Chunk, 0, len(results))}
	for i, r := range results {
		if r.err != nil {
			logger.WarnContext(ctx, "dropping chunk that could not be located",
				"position", i, "preview", preview(texts[i], 80), "error", r.err)
			out.Failures = append(out.Failures, RelocationFailure{Position: i, Text: texts[i], Err: r.err})
			continue
		}
		out.Chunks = append(out.Chunks, r.chunk)
	}
	return out
}
