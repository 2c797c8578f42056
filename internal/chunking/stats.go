package chunking

import (
	"math"
	"slices"
	"unicode/utf8"
)

// Statistics summarises chunk sizes in characters.
type Statistics struct {
	TotalChunks        int     `json:"total_chunks"`
	LargestChunkChars  int     `json:"largest_chunk_chars"`
	LargestText        string  `json:"largest_text"`
	SmallestChunkChars int     `json:"smallest_chunk_chars"`
	SmallestText       string  `json:"smallest_text"`
	AvgChars           float64 `json:"avg_chars"`
}

// Aggregate computes Statistics over chunks. Every chunk must carry non-empty
// text; the first offending chunk is reported as an InvalidChunkError.
// On ties for largest or smallest the earliest chunk is kept. An empty list
// yields zero Statistics.
func Aggregate(chunks []Chunk) (Statistics, error) {
	stats := Statistics{TotalChunks: len(chunks)}
	if len(chunks) == 0 {
		return stats, nil
	}

	totalChars := 0
	for i, chunk := range chunks {
		if chunk.Text == "" {
			return Statistics{}, &InvalidChunkError{Index: i, Reason: "has empty 'text'"}
		}

		n := utf8.RuneCountInString(chunk.Text)
		totalChars += n

		if i == 0 || n > stats.LargestChunkChars {
			stats.LargestChunkChars = n
			stats.LargestText = chunk.Text
		}
		if i == 0 || n < stats.SmallestChunkChars {
			stats.SmallestChunkChars = n
			stats.SmallestText = chunk.Text
		}
	}

	stats.AvgChars = float64(totalChars) / float64(stats.TotalChunks)
	return stats, nil
}

// CharsPerToken approximates token counts for chunks whose chunker did not
// report one.
const CharsPerToken = 4.0

// TokenStatistics describes token counts per chunk.
type TokenStatistics struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
	// Estimated is true when at least one count was approximated from length.
	Estimated bool `json:"estimated"`
}

// TokenStats computes token count statistics. Chunks without a reported count
// are estimated at CharsPerToken characters per token (at least 1).
func TokenStats(chunks []Chunk) TokenStatistics {
	if len(chunks) == 0 {
		return TokenStatistics{}
	}

	estimated := false
	counts := make([]int, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.TokenCount != nil {
			counts = append(counts, *chunk.TokenCount)
			continue
		}
		estimated = true
		n := int(math.Round(float64(utf8.RuneCountInString(chunk.Text)) / CharsPerToken))
		counts = append(counts, max(n, 1))
	}

	sorted := slices.Clone(counts)
	slices.Sort(sorted)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(len(counts))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return TokenStatistics{
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
		Mean:      math.Round(mean*100) / 100,
		P95:       sorted[p95Index],
		Estimated: estimated,
	}
}
