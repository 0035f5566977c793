package aggregate

// Ellipsis marks a truncated axis label.
const Ellipsis = "..."

// Axis label thresholds, in runes.
const (
	CourseLabelMax       = 20
	CourseSourceLabelMax = 25
)

// Label is a display string plus the original it was cut from.
type Label struct {
	Text string `json:"text"`
	Full string `json:"full"`
}

func (l Label) Truncated() bool { return l.Text != l.Full }

// Truncate shortens s to max runes followed by Ellipsis when it is longer
// than max. The untouched original is kept in Full.
func Truncate(s string, max int) Label {
	if max < 0 {
		max = 0
	}
	r := []rune(s)
	if len(r) <= max {
		return Label{Text: s, Full: s}
	}
	return Label{Text: string(r[:max]) + Ellipsis, Full: s}
}
