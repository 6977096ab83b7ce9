package editdist

// Distance returns the minimum number of single-element insertions,
// deletions, and substitutions required to transform a into b.
//
// Contract:
// - Concurrency: pure function, safe for concurrent use.
// - Totality: defined for all finite inputs, including empty slices.
// - Result: never negative; zero iff a and b are element-wise equal.
func Distance[T comparable](a, b []T) int {
	// Keep b as the shorter sequence so the rows are as small as possible.
	if len(b) > len(a) {
		a, b = b, a
	}

	m, n := len(a), len(b)
	if n == 0 {
		return m
	}

	// prev holds row i-1, cur is filled as row i. Row 0 is the all-insertions
	// base case: transforming "" into b[:j] takes j insertions.
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		cur[0] = i // transforming a[:i] into "" takes i deletions
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[n]
}

// Strings returns the edit distance between two UTF-8 strings, counted in
// runes rather than bytes.
func Strings(a, b string) int {
	return Distance([]rune(a), []rune(b))
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
