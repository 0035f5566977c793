package aggregate

import (
	"fmt"
	"math"
)

// Share is a pie slice: a bucket with its rounded percentage of the whole.
type Share struct {
	Bucket
	Percent int    `json:"percent"`
	Color   string `json:"color,omitempty"`
}

// Caption renders the pie label, e.g. "WALKIN 45%".
func (s Share) Caption() string {
	return fmt.Sprintf("%s %d%%", s.Name, s.Percent)
}

// Shares computes percent-of-whole for each bucket. When the buckets add up
// to zero every share is 0%.
func Shares(buckets []Bucket) []Share {
	total := Total(buckets)
	out := make([]Share, len(buckets))
	for i, b := range buckets {
		out[i] = Share{Bucket: b}
		if total > 0 {
			out[i].Percent = int(math.Round(float64(b.Value) * 100 / float64(total)))
		}
	}
	return out
}

// Colorize assigns palette colors to shares by position, or by course type
// when byType is set and the share name is a known type.
func Colorize(shares []Share, p Palette, byType bool) []Share {
	out := make([]Share, len(shares))
	for i, s := range shares {
		out[i] = s
		if byType {
			out[i].Color = p.ForType(typeOf(s.Name), i)
		} else {
			out[i].Color = p.At(i)
		}
	}
	return out
}
