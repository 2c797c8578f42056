package chunking

import (
	"errors"
	"fmt"
)

var (
	// ErrRelocationNotFound is recorded when a chunk's text cannot be placed in its document.
	ErrRelocationNotFound = errors.New("chunk not found in document")
	// ErrMalformedChunk is returned when a chunk lacks a field an operation needs.
	ErrMalformedChunk = errors.New("malformed chunk")
	// ErrInvalidChunk is returned by Aggregate for chunks with empty text.
	ErrInvalidChunk = errors.New("invalid chunk")
	// ErrInvalidConfig is returned for chunker configurations that cannot be built.
	ErrInvalidConfig = errors.New("invalid chunker configuration")
)

// MalformedChunkError names the chunk and the missing field.
type MalformedChunkError struct {
	Index int
	Field string
}

func (e *MalformedChunkError) Error() string {
	return fmt.Sprintf("chunk at index %d is missing %q", e.Index, e.Field)
}

func (e *MalformedChunkError) Is(target error) bool {
	return target == ErrMalformedChunk
}

// InvalidChunkError names the chunk that failed statistics validation.
type InvalidChunkError struct {
	Index  int
	Reason string
}

func (e *InvalidChunkError) Error() string {
	return fmt.Sprintf("chunk at index %d %s", e.Index, e.Reason)
}

func (e *InvalidChunkError) Is(target error) bool {
	return target == ErrInvalidChunk
}

// RelocationFailure records a textual chunk that was dropped during assembly.
type RelocationFailure struct {
	// Position is the index of the chunk in the chunker's output.
	Position int
	Text     string
	Err      error
}
