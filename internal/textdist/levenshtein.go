// Package textdist computes edit distances between strings.
//
// Distances are computed over runes, not bytes, so multi-byte characters
// count as single edits.
package textdist

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-character insertions, deletions, and substitutions that
// transform a into b. If either string is empty the result is the other
// string's length.
//
// The classic (|a|+1) x (|b|+1) dynamic-programming table is rolled into two
// rows since each cell only depends on the current and previous row.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
