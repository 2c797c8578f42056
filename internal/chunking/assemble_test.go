package chunking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeTextual struct {
	texts []string
	err   error
}

func (f fakeTextual) SplitText(context.Context, string) ([]string, error) {
	return f.texts, f.err
}

type fakeStructured struct {
	chunks []Chunk
	err    error
}

func (f fakeStructured) Chunk(context.Context, string) ([]Chunk, error) {
	return f.chunks, f.err
}

func TestAssemble_Textual(t *testing.T) {
	document := "The quick brown fox jumps over the lazy dog."
	h := Textual(fakeTextual{texts: []string{
		"The quick brown fox",
		"not in document at all xyz",
		"lazy dog",
	}})

	got, err := Assemble(context.Background(), document, h)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	want := []Chunk{
		{Text: "The quick brown fox", StartIndex: 0, EndIndex: 19},
		{Text: "lazy dog", StartIndex: 35, EndIndex: 43},
	}
	if diff := cmp.Diff(want, got.Chunks); diff != "" {
		t.Errorf("Assemble() chunks mismatch (-want +got):\n%s", diff)
	}

	if len(got.Failures) != 1 {
		t.Fatalf("Assemble() failures = %d, want 1", len(got.Failures))
	}
	if got.Failures[0].Position != 1 {
		t.Errorf("failure position = %d, want 1", got.Failures[0].Position)
	}
	if !errors.Is(got.Failures[0].Err, ErrRelocationNotFound) {
		t.Errorf("failure error = %v, want ErrRelocationNotFound", got.Failures[0].Err)
	}
}

func TestAssemble_Structured(t *testing.T) {
	count := 3
	chunks := []Chunk{{Text: "abc", StartIndex: 10, EndIndex: 13, TokenCount: &count}}
	got, err := Assemble(context.Background(), "anything", Structured(fakeStructured{chunks: chunks}))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if diff := cmp.Diff(chunks, got.Chunks); diff != "" {
		t.Errorf("structured chunks should pass through unchanged (-want +got):\n%s", diff)
	}
	if len(got.Failures) != 0 {
		t.Errorf("Assemble() failures = %v, want none", got.Failures)
	}
}

func TestAssemble_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		handle  Handle
		wantErr error
	}{
		{name: "empty handle", handle: Handle{}, wantErr: ErrInvalidConfig},
		{name: "textual chunker error", handle: Textual(fakeTextual{err: boom}), wantErr: boom},
		{name: "structured chunker error", handle: Structured(fakeStructured{err: boom}), wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(context.Background(), "doc", tt.handle)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Assemble() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAssemble_RecursiveSplitterRoundTrip(t *testing.T) {
	document := "aaaa bbbb cccc dddd"
	h := Textual(NewRecursiveSplitter(10, 4, DefaultSeparators))

	got, err := Assemble(context.Background(), document, h)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if len(got.Failures) != 0 {
		t.Fatalf("Assemble() failures = %v, want none", got.Failures)
	}

	runes := []rune(document)
	for i, c := range got.Chunks {
		if string(runes[c.StartIndex:c.EndIndex]) != c.Text {
			t.Errorf("chunk %d: document[%d:%d] = %q, want %q",
				i, c.StartIndex, c.EndIndex, string(runes[c.StartIndex:c.EndIndex]), c.Text)
		}
	}
}
