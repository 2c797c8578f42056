package chunking

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(n int) *int { return &n }

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		chunks []Chunk
		want   Statistics
	}{
		{
			name:   "empty list",
			chunks: nil,
			want:   Statistics{},
		},
		{
			name:   "mixed sizes",
			chunks: []Chunk{{Text: "abc"}, {Text: "a"}, {Text: "abcde"}},
			want: Statistics{
				TotalChunks:        3,
				LargestChunkChars:  5,
				LargestText:        "abcde",
				SmallestChunkChars: 1,
				SmallestText:       "a",
				AvgChars:           3,
			},
		},
		{
			name:   "ties keep the first chunk",
			chunks: []Chunk{{Text: "ab"}, {Text: "cd"}},
			want: Statistics{
				TotalChunks:        2,
				LargestChunkChars:  2,
				LargestText:        "ab",
				SmallestChunkChars: 2,
				SmallestText:       "ab",
				AvgChars:           2,
			},
		},
		{
			name:   "sizes counted in characters",
			chunks: []Chunk{{Text: "héllo"}},
			want: Statistics{
				TotalChunks:        1,
				LargestChunkChars:  5,
				LargestText:        "héllo",
				SmallestChunkChars: 5,
				SmallestText:       "héllo",
				AvgChars:           5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tt.chunks)
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregate_EmptyText(t *testing.T) {
	_, err := Aggregate([]Chunk{{Text: "ok"}, {Text: ""}, {Text: ""}})
	if !errors.Is(err, ErrInvalidChunk) {
		t.Fatalf("Aggregate() error = %v, want ErrInvalidChunk", err)
	}
	var invalid *InvalidChunkError
	if !errors.As(err, &invalid) {
		t.Fatalf("Aggregate() error should be *InvalidChunkError, got %T", err)
	}
	if invalid.Index != 1 {
		t.Errorf("InvalidChunkError.Index = %d, want 1", invalid.Index)
	}
}

func TestTokenStats(t *testing.T) {
	t.Run("reported counts", func(t *testing.T) {
		chunks := make([]Chunk, 20)
		for i := range chunks {
			chunks[i] = Chunk{Text: "x", TokenCount: intPtr(i + 1)}
		}
		got := TokenStats(chunks)
		want := TokenStatistics{Min: 1, Max: 20, Mean: 10.5, P95: 20}
		if got != want {
			t.Errorf("TokenStats() = %+v, want %+v", got, want)
		}
	})

	t.Run("estimated counts", func(t *testing.T) {
		got := TokenStats([]Chunk{{Text: "abcdefgh"}, {Text: "a"}})
		if !got.Estimated {
			t.Error("TokenStats() should mark estimated counts")
		}
		if got.Min != 1 || got.Max != 2 {
			t.Errorf("TokenStats() min/max = %d/%d, want 1/2", got.Min, got.Max)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := TokenStats(nil); got != (TokenStatistics{}) {
			t.Errorf("TokenStats(nil) = %+v, want zero", got)
		}
	})
}

func TestToChunks(t *testing.T) {
	text := "hello"
	start, end := 0, 5

	t.Run("missing offset with offsets required", func(t *testing.T) {
		_, err := ToChunks([]ChunkPayload{{Text: &text, StartIndex: &start}}, true)
		var malformed *MalformedChunkError
		if !errors.As(err, &malformed) {
			t.Fatalf("ToChunks() error = %v, want *MalformedChunkError", err)
		}
		if malformed.Field != "end_index" || malformed.Index != 0 {
			t.Errorf("MalformedChunkError = %+v, want index 0 field end_index", malformed)
		}
		if !errors.Is(err, ErrMalformedChunk) {
			t.Error("error should match ErrMalformedChunk")
		}
	})

	t.Run("missing offset tolerated", func(t *testing.T) {
		got, err := ToChunks([]ChunkPayload{{Text: &text, StartIndex: &start}}, false)
		if err != nil {
			t.Fatalf("ToChunks() error = %v", err)
		}
		if got[0].StartIndex != 0 || got[0].EndIndex != 0 {
			t.Errorf("chunk without both offsets should be an empty span, got %v", got[0])
		}
	})

	t.Run("complete payload", func(t *testing.T) {
		got, err := ToChunks([]ChunkPayload{{Text: &text, StartIndex: &start, EndIndex: &end, TokenCount: intPtr(2)}}, true)
		if err != nil {
			t.Fatalf("ToChunks() error = %v", err)
		}
		want := []Chunk{{Text: "hello", StartIndex: 0, EndIndex: 5, TokenCount: intPtr(2)}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ToChunks() mismatch (-want +got):\n%s", diff)
		}
	})
}
