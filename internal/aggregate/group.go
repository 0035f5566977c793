// Package aggregate reshapes raw enrollment records into chart and table
// ready buckets and rows. Every function is pure and leaves its input alone.
package aggregate

import "enrollment-dashboard/internal/domain"

// Bucket is a named total.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Pair is one (key, count) observation fed into GroupSum.
type Pair struct {
	Key   string
	Count int
}

// GroupSum sums counts per key. Buckets come out in first-seen key order.
func GroupSum(pairs []Pair) []Bucket {
	out := make([]Bucket, 0, len(pairs))
	idx := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if i, ok := idx[p.Key]; ok {
			out[i].Value += p.Count
			continue
		}
		idx[p.Key] = len(out)
		out = append(out, Bucket{Name: p.Key, Value: p.Count})
	}
	return out
}

// LevelTotals sums enrollments per level across all courses. Bucket names are
// level keys, so the unspecified level shows up as "UNKNOWN" until a caller
// relabels it.
func LevelTotals(courses []domain.CourseLevels) []Bucket {
	var pairs []Pair
	for _, c := range courses {
		for _, l := range c.Levels {
			pairs = append(pairs, Pair{Key: l.Level.Key(), Count: l.Count})
		}
	}
	return GroupSum(pairs)
}

// SourceTotals sums enrollments per lead source, keyed by the raw source name.
func SourceTotals(sources []domain.SourceCourses) []Bucket {
	pairs := make([]Pair, 0, len(sources))
	for _, s := range sources {
		pairs = append(pairs, Pair{Key: s.SourceName, Count: s.Total()})
	}
	return GroupSum(pairs)
}

// TypeTotals sums staff enrollments per normalized course type.
func TypeTotals(courses []domain.StaffCourse) []Bucket {
	pairs := make([]Pair, 0, len(courses))
	for _, c := range courses {
		pairs = append(pairs, Pair{Key: string(c.Type.Normalize()), Count: c.Count})
	}
	return GroupSum(pairs)
}

func Total(buckets []Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.Value
	}
	return total
}

// Relabel returns a copy of buckets with every name passed through label.
// Values and order are untouched.
func Relabel(buckets []Bucket, label func(string) string) []Bucket {
	out := make([]Bucket, len(buckets))
	for i, b := range buckets {
		out[i] = Bucket{Name: label(b.Name), Value: b.Value}
	}
	return out
}
