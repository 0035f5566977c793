package aggregate

import "enrollment-dashboard/internal/domain"

// ComparisonRow lines up telecaller and counsellor enrollments for a course.
type ComparisonRow struct {
	Course         string            `json:"course"`
	FullCourseName string            `json:"fullCourseName"`
	Telecaller     int               `json:"telecaller"`
	Counsellor     int               `json:"counsellor"`
	Type           domain.CourseType `json:"type"`
}

func (r ComparisonRow) Total() int { return r.Telecaller + r.Counsellor }

// Compare joins counsellor counts onto the telecaller courses by course name.
// Courses without a counsellor match get 0; rows where both sides are 0 are
// dropped. Courses that only the counsellors have are not emitted, so the
// output is never longer than primary. CompareUnion keeps them.
func Compare(primary, secondary []domain.StaffCourse) []ComparisonRow {
	idx := indexByCourse(secondary)
	out := make([]ComparisonRow, 0, len(primary))
	for _, p := range primary {
		row := newComparisonRow(p.CourseName, p.Type)
		row.Telecaller = p.Count
		if s, ok := idx[p.CourseName]; ok {
			row.Counsellor = s.Count
		}
		if row.Telecaller == 0 && row.Counsellor == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}

// CompareUnion is the full outer version of Compare: every course named on
// either side gets a row, primary courses first, then counsellor-only
// courses in their own order. Zero rows are kept.
func CompareUnion(primary, secondary []domain.StaffCourse) []ComparisonRow {
	idx := indexByCourse(secondary)
	seen := make(map[string]bool, len(primary))
	out := make([]ComparisonRow, 0, len(primary)+len(secondary))
	for _, p := range primary {
		if seen[p.CourseName] {
			continue
		}
		seen[p.CourseName] = true
		row := newComparisonRow(p.CourseName, p.Type)
		row.Telecaller = p.Count
		if s, ok := idx[p.CourseName]; ok {
			row.Counsellor = s.Count
		}
		out = append(out, row)
	}
	for _, s := range secondary {
		if seen[s.CourseName] {
			continue
		}
		seen[s.CourseName] = true
		row := newComparisonRow(s.CourseName, s.Type)
		row.Counsellor = s.Count
		out = append(out, row)
	}
	return out
}

func newComparisonRow(course string, t domain.CourseType) ComparisonRow {
	return ComparisonRow{
		Course:         Truncate(course, CourseLabelMax).Text,
		FullCourseName: course,
		Type:           t,
	}
}

// indexByCourse keeps the first record per course name.
func indexByCourse(courses []domain.StaffCourse) map[string]domain.StaffCourse {
	idx := make(map[string]domain.StaffCourse, len(courses))
	for _, c := range courses {
		if _, ok := idx[c.CourseName]; !ok {
			idx[c.CourseName] = c
		}
	}
	return idx
}
