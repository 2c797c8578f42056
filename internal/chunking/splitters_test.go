package chunking

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecursiveSplitter_SplitText(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		text    string
		want    []string
	}{
		{
			name: "packs words up to size",
			size: 10,
			text: "aaaa bbbb cccc dddd",
			want: []string{"aaaa bbbb", "cccc dddd"},
		},
		{
			name:    "carries overlap into the next chunk",
			size:    10,
			overlap: 4,
			text:    "aaaa bbbb cccc dddd",
			want:    []string{"aaaa bbbb", "bbbb cccc", "cccc dddd"},
		},
		{
			name: "prefers paragraph breaks",
			size: 20,
			text: "first paragraph\n\nsecond paragraph",
			want: []string{"first paragraph", "second paragraph"},
		},
		{
			name: "falls back to characters",
			size: 3,
			text: "abcdefg",
			want: []string{"abc", "def", "g"},
		},
		{
			name: "empty text",
			size: 10,
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRecursiveSplitter(tt.size, tt.overlap, DefaultSeparators)
			got, err := s.SplitText(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("SplitText() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitText() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCharacterSplitter_SplitText(t *testing.T) {
	s := NewCharacterSplitter(20, 0, "\n\n")
	got, err := s.SplitText(context.Background(), "para one\n\npara two\n\npara three")
	if err != nil {
		t.Fatalf("SplitText() error = %v", err)
	}
	want := []string{"para one\n\npara two", "para three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitText() mismatch (-want +got):\n%s", diff)
	}
}
