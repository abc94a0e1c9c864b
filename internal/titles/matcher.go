package titles

// lcsLength returns the length of the longest common subsequence of
// two strings, compared rune by rune. Two rolling rows keep the DP
// table at O(min-ish) memory; title strings are short so the quadratic
// time is irrelevant.
func lcsLength(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			switch {
			case ra[i-1] == rb[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Ratio measures the similarity of two strings as 2*M/(len(a)+len(b)),
// where M is the length of their longest common subsequence. The result
// lies in [0, 1]; 1 means the strings are equal. Two empty strings are
// considered identical.
func Ratio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la+lb == 0 {
		return 1.0
	}
	return 2 * float64(lcsLength(a, b)) / float64(la+lb)
}
