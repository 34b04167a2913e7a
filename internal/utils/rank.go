package utils

// CreateRankList creates a slice of ranks based on position.
// The rank starts at 1 for the first item and increments for subsequent items.
// Useful for ranking items that are already sorted.
func CreateRankList(count int) []int {
	if count <= 0 {
		return []int{}
	}
	ranks := make([]int, count)
	for i := 0; i < count; i++ {
		ranks[i] = i + 1
	}
	return ranks
}
