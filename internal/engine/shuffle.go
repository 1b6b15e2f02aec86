package engine

import "math/rand"

// Shuffle permutes items in place with Fisher-Yates: walk from the last
// index down to 1, swapping with a uniformly chosen index in [0, i]. Every
// permutation is equally likely.
func Shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Limit returns the first n items, or all of them when n >= len(items).
// Callers clamp n to the pool size before it gets here.
func Limit[T any](items []T, n int) []T {
	if n >= len(items) {
		return items
	}
	return items[:n]
}
