package aggregate

import (
	"cmp"
	"slices"
)

// SortDesc returns a copy of items ordered by count, highest first.
// Ties keep their original relative order.
func SortDesc[T any](items []T, count func(T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(count(b), count(a))
	})
	return out
}

// RankTop drops zero counts, sorts the rest with SortDesc and keeps at most n.
// A limit below 1 yields an empty result.
func RankTop[T any](items []T, count func(T) int, n int) []T {
	if n < 1 {
		return []T{}
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if count(it) != 0 {
			kept = append(kept, it)
		}
	}
	kept = SortDesc(kept, count)
	if len(kept) > n {
		kept = kept[:n]
	}
	return kept
}

// BucketValue is the count accessor for ranking buckets.
func BucketValue(b Bucket) int { return b.Value }
