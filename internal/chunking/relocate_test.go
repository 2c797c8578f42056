package chunking

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/hbollon/go-edlib"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		document string
		target   string
		want     Span
		wantOK   bool
	}{
		{
			name:     "exact substring",
			document: "The quick brown fox. Jumps over.",
			target:   "brown fox",
			want:     Span{Start: 4, End: 13},
			wantOK:   true,
		},
		{
			name:     "trailing period dropped",
			document: "The quick brown fox jumps",
			target:   "The quick brown fox.",
			want:     Span{Start: 0, End: 19},
			wantOK:   true,
		},
		{
			name:     "whitespace and case differences",
			document: "Hello   world\nagain",
			target:   "hello world again",
			want:     Span{Start: 0, End: 19},
			wantOK:   true,
		},
		{
			name:     "character offsets for multibyte text",
			document: "héllo wörld",
			target:   "wörld",
			want:     Span{Start: 6, End: 11},
			wantOK:   true,
		},
		{
			name:     "fuzzy sentence with reordered words",
			document: "Alpha beta gamma delta. Something else entirely.",
			target:   "delta gamma beta alpha",
			want:     Span{Start: 0, End: 22},
			wantOK:   true,
		},
		{
			name:     "fuzzy score below threshold",
			document: "The cat sat on the mat.",
			target:   "The cat sat on the hat",
			wantOK:   false,
		},
		{
			name:     "not found",
			document: "The cat sat on the mat.",
			target:   "completely unrelated text",
			wantOK:   false,
		},
		{
			name:     "empty target matches at start",
			document: "abc",
			target:   "",
			want:     Span{Start: 0, End: 0},
			wantOK:   true,
		},
		{
			name:     "whitespace-only target",
			document: "abc def",
			target:   "\t\t",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(tt.document, tt.target)
			if ok != tt.wantOK {
				t.Fatalf("Locate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Locate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLocate_EarliestSentenceWinsTie(t *testing.T) {
	document := "red green blue\nsomething else\nblue green red"
	got, ok := Locate(document, "green red blue")
	if !ok {
		t.Fatal("Locate() should find a fuzzy match")
	}
	if want := (Span{Start: 0, End: 14}); got != want {
		t.Errorf("Locate() = %+v, want %+v", got, want)
	}
}

func TestTokenSortRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "same tokens any order", a: "new york mets", b: "mets new york", want: 100},
		{name: "punctuation and case ignored", a: "Hello, World!", b: "world hello", want: 100},
		{name: "empty side", a: "", b: "anything", want: 0},
		{name: "one character differs", a: "abcd", b: "abce", want: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenSortRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("tokenSortRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioCeiling(t *testing.T) {
	if got := ratioCeiling(10, 10); got != 100 {
		t.Errorf("ratioCeiling(10, 10) = %d, want 100", got)
	}
	if got := ratioCeiling(10, 30); got != 50 {
		t.Errorf("ratioCeiling(10, 30) = %d, want 50", got)
	}
	if got := ratioCeiling(0, 5); got != 0 {
		t.Errorf("ratioCeiling(0, 5) = %d, want 0", got)
	}
}

func TestLocate_EverySubstringRoundTrips(t *testing.T) {
	document := "Café au lait, two cats.\nA dog!  Ends here"
	runes := []rune(document)

	for s := 0; s < len(runes); s++ {
		for e := s + 1; e <= len(runes); e++ {
			target := string(runes[s:e])
			if strings.HasSuffix(target, ".") {
				continue
			}
			got, ok := Locate(document, target)
			if !ok {
				t.Fatalf("Locate(%q) not found", target)
			}
			if found := string(runes[got.Start:got.End]); found != target {
				t.Fatalf("Locate(%q) = %+v covering %q", target, got, found)
			}
		}
	}
}

func TestLocate_LongSegmentMemory(t *testing.T) {
	words := make([]string, 1400)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	document := strings.Join(words, " ")
	words[700] = "x0700"
	target := strings.Join(words, " ")

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	got, ok := Locate(document, target)
	runtime.ReadMemStats(&after)

	if !ok {
		t.Fatal("Locate() should accept a one-word difference")
	}
	if want := (Span{Start: 0, End: len([]rune(document))}); got != want {
		t.Errorf("Locate() = %+v, want %+v", got, want)
	}
	if allocated := after.TotalAlloc - before.TotalAlloc; allocated > 32<<20 {
		t.Errorf("Locate() allocated %d MiB for an 8k-character segment", allocated>>20)
	}
}

func TestLCSLength(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "small", a: "abcd", b: "abce", want: 3},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "rolling rows", a: strings.Repeat("ab", 200), b: strings.Repeat("a", 300), want: 200},
		{name: "rolling rows, longer second", a: strings.Repeat("a", 300), b: strings.Repeat("ab", 200), want: 200},
		{name: "rolling rows, multibyte", a: strings.Repeat("éx", 300), b: strings.Repeat("é", 250), want: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			la, lb := len([]rune(tt.a)), len([]rune(tt.b))
			if got := lcsLength(tt.a, tt.b, la, lb); got != tt.want {
				t.Errorf("lcsLength() = %d, want %d", got, tt.want)
			}
			if ref := edlib.LCS(tt.a, tt.b); ref != tt.want {
				t.Errorf("edlib.LCS() = %d, want %d", ref, tt.want)
			}
		})
	}
}
