package template

import "strings"

// Similarity computes a similarity ratio between two texts as
// 2*LCS/(len(a)+len(b)) over lowercased runes, where LCS is the length
// of the longest common subsequence. The ratio is symmetric and lands
// in [0,1]; two empty strings score 0.0.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra)+len(rb) == 0 {
		return 0.0
	}

	// Two-row DP keeps memory linear in the shorter text.
	if len(rb) < len(ra) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for _, cb := range rb {
		for i, ca := range ra {
			if ca == cb {
				curr[i+1] = prev[i] + 1
			} else if prev[i+1] >= curr[i] {
				curr[i+1] = prev[i+1]
			} else {
				curr[i+1] = curr[i]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(ra)]
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}
