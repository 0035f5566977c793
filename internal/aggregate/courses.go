package aggregate

import "enrollment-dashboard/internal/domain"

// CourseBar is one bar of the per-course breakdown chart.
type CourseBar struct {
	Course           string         `json:"course"`
	FullCourseName   string         `json:"fullCourseName"`
	TotalEnrollments int            `json:"totalEnrollments"`
	Levels           map[string]int `json:"levels"`
}

// CourseBars totals each course across its levels and keeps the n busiest.
// Level counts are keyed by display label.
func CourseBars(courses []domain.CourseLevels, n int) []CourseBar {
	bars := make([]CourseBar, 0, len(courses))
	for _, c := range courses {
		label := Truncate(c.Course, CourseLabelMax)
		bar := CourseBar{
			Course:           label.Text,
			FullCourseName:   label.Full,
			TotalEnrollments: c.Total(),
			Levels:           make(map[string]int, len(c.Levels)),
		}
		for _, l := range c.Levels {
			bar.Levels[l.Level.Label()] += l.Count
		}
		bars = append(bars, bar)
	}
	return RankTop(bars, func(b CourseBar) int { return b.TotalEnrollments }, n)
}

// CourseSource is one (source, course) cell of the course performance chart.
type CourseSource struct {
	Source         string `json:"source"`
	Course         string `json:"course"`
	FullCourseName string `json:"fullCourseName"`
	Count          int    `json:"count"`
}

// CourseSources flattens every source's courses and keeps the n largest.
func CourseSources(sources []domain.SourceCourses, n int) []CourseSource {
	var rows []CourseSource
	for _, s := range sources {
		for _, c := range s.Courses {
			label := Truncate(c.CourseName, CourseSourceLabelMax)
			rows = append(rows, CourseSource{
				Source:         domain.SpaceSource(s.SourceName),
				Course:         label.Text,
				FullCourseName: label.Full,
				Count:          c.Count,
			})
		}
	}
	return RankTop(rows, func(r CourseSource) int { return r.Count }, n)
}

// Summary holds the headline numbers shown above the charts.
type Summary struct {
	TotalEnrollments int `json:"totalEnrollments"`
	TotalCourses     int `json:"totalCourses"`
	TotalSources     int `json:"totalSources"`
}

func Summarize(ds domain.Dataset) Summary {
	s := Summary{
		TotalCourses: len(ds.Levels),
		TotalSources: len(ds.Sources),
	}
	for _, c := range ds.Levels {
		s.TotalEnrollments += c.Total()
	}
	return s
}
