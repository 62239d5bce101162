package analysis

import (
	"sort"
	"strings"

	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

// NGram is a repeated move sequence and its occurrence count.
type NGram struct {
	N        int      `json:"n"`
	Sequence []string `json:"sequence"`
	Count    int      `json:"count"`
}

// MineNGrams finds the topK most frequent move sequences of each
// length in [minN, maxN]. Only sequences that occur at least twice are
// reported.
func MineNGrams(moves []storage.MoveRecord, minN, maxN, topK int) map[int][]NGram {
	result := make(map[int][]NGram)

	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = m.Notation
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		ngrams := mineForN(tokens, n, topK)
		if len(ngrams) > 0 {
			result[n] = ngrams
		}
	}
	return result
}

func mineForN(tokens []string, n, topK int) []NGram {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}

	ngrams := make([]NGram, 0, len(counts))
	for seq, count := range counts {
		if count < 2 {
			continue
		}
		ngrams = append(ngrams, NGram{N: n, Sequence: strings.Fields(seq), Count: count})
	}

	sort.Slice(ngrams, func(i, j int) bool {
		if ngrams[i].Count != ngrams[j].Count {
			return ngrams[i].Count > ngrams[j].Count
		}
		return strings.Join(ngrams[i].Sequence, " ") < strings.Join(ngrams[j].Sequence, " ")
	})

	if len(ngrams) > topK {
		ngrams = ngrams[:topK]
	}
	return ngrams
}
