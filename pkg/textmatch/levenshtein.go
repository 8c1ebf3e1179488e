package textmatch

// Distance computes the Levenshtein edit distance between a and b using the
// standard iterative two-row construction: O(len(a)*len(b)) time and
// O(min(len(a),len(b))) space. Inputs are compared as-is; callers pass
// already-lowercased strings.
func Distance(a, b string) int {
	// Work on runes so multi-byte input degrades sanely even though
	// normalized text is plain ASCII.
	ra := []rune(a)
	rb := []rune(b)

	// Keep the shorter string in the inner dimension.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
