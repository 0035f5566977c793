// Package dashboard assembles everything the enrollment dashboard shows from
// one dataset: headline stats, chart series and the two detail tables.
package dashboard

import (
	"fmt"

	"enrollment-dashboard/internal/aggregate"
	"enrollment-dashboard/internal/config"
	"enrollment-dashboard/internal/domain"
	"enrollment-dashboard/internal/table"
)

// View is the complete, presentation-ready dashboard model.
type View struct {
	Stats aggregate.Summary `json:"stats"`

	LevelPie      []aggregate.Share        `json:"levelPie"`
	CourseBars    []aggregate.CourseBar    `json:"courseBars"`
	SourcePie     []aggregate.Share        `json:"sourcePie"`
	TopSources    []aggregate.Bucket       `json:"topSources"`
	CourseSources []aggregate.CourseSource `json:"courseSources"`

	Comparison           []aggregate.ComparisonRow `json:"comparison"`
	TelecallerTypes      []aggregate.Share         `json:"telecallerTypes"`
	CounsellorTypes      []aggregate.Share         `json:"counsellorTypes"`
	TopTelecallerCourses []StaffBar                `json:"topTelecallerCourses"`
	TopCounsellorCourses []StaffBar                `json:"topCounsellorCourses"`

	LevelTable  table.Table[LevelRow]  `json:"levelTable"`
	SourceTable table.Table[SourceRow] `json:"sourceTable"`
}

// StaffBar is one bar of a per-role top courses chart.
type StaffBar struct {
	Course         string            `json:"course"`
	FullCourseName string            `json:"fullCourseName"`
	Count          int               `json:"count"`
	Type           domain.CourseType `json:"type"`
	Color          string            `json:"color"`
}

// Build computes the view. Non-positive limits fall back to config defaults.
func Build(ds domain.Dataset, limits config.Limits, palette aggregate.Palette) View {
	limits = withDefaults(limits)

	sources := aggregate.Relabel(aggregate.SourceTotals(ds.Sources), domain.HumanizeSource)

	return View{
		Stats:         aggregate.Summarize(ds),
		LevelPie:      levelPie(ds.Levels, palette),
		CourseBars:    aggregate.CourseBars(ds.Levels, limits.TopCourses),
		SourcePie:     aggregate.Colorize(aggregate.Shares(aggregate.SortDesc(sources, aggregate.BucketValue)), palette, false),
		TopSources:    aggregate.RankTop(sources, aggregate.BucketValue, limits.TopSources),
		CourseSources: aggregate.CourseSources(ds.Sources, limits.TopCourseSources),

		Comparison:           aggregate.Compare(ds.Telecaller, ds.Counsellor),
		TelecallerTypes:      typePie(ds.Telecaller, palette),
		CounsellorTypes:      typePie(ds.Counsellor, palette),
		TopTelecallerCourses: topStaff(ds.Telecaller, palette, limits.TopStaffCourses),
		TopCounsellorCourses: topStaff(ds.Counsellor, palette, limits.TopStaffCourses),

		LevelTable:  LevelTable(ds.Levels),
		SourceTable: SourceTable(ds.Sources),
	}
}

func withDefaults(l config.Limits) config.Limits {
	d := config.Defaults().Limits
	if l.TopCourses < 1 {
		l.TopCourses = d.TopCourses
	}
	if l.TopSources < 1 {
		l.TopSources = d.TopSources
	}
	if l.TopCourseSources < 1 {
		l.TopCourseSources = d.TopCourseSources
	}
	if l.TopStaffCourses < 1 {
		l.TopStaffCourses = d.TopStaffCourses
	}
	return l
}

func levelPie(courses []domain.CourseLevels, p aggregate.Palette) []aggregate.Share {
	buckets := aggregate.Relabel(aggregate.LevelTotals(courses), domain.LevelLabel)
	return aggregate.Colorize(aggregate.Shares(buckets), p, false)
}

func typePie(courses []domain.StaffCourse, p aggregate.Palette) []aggregate.Share {
	return aggregate.Colorize(aggregate.Shares(aggregate.TypeTotals(courses)), p, true)
}

func topStaff(courses []domain.StaffCourse, p aggregate.Palette, n int) []StaffBar {
	top := aggregate.RankTop(courses, func(c domain.StaffCourse) int { return c.Count }, n)
	out := make([]StaffBar, len(top))
	for i, c := range top {
		t := c.Type.Normalize()
		out[i] = StaffBar{
			Course:         aggregate.Truncate(c.CourseName, aggregate.CourseLabelMax).Text,
			FullCourseName: c.CourseName,
			Count:          c.Count,
			Type:           t,
			Color:          p.ForType(t, i),
		}
	}
	return out
}

// LevelRow is one (course, level) line of the enrollment-by-level table.
type LevelRow struct {
	ID     string
	Course string
	Level  domain.Level
	Count  int
}

// SourceRow is one (source, course) line of the enrollment-by-source table.
// Source keeps the raw API name; the column renders it humanized.
type SourceRow struct {
	ID     string
	Source string
	Course string
	Count  int
}

func LevelTable(courses []domain.CourseLevels) table.Table[LevelRow] {
	var rows []LevelRow
	for _, c := range courses {
		for i, l := range c.Levels {
			rows = append(rows, LevelRow{
				ID:     fmt.Sprintf("%s-%s-%d", c.Course, l.Level.Key(), i),
				Course: c.Course,
				Level:  l.Level,
				Count:  l.Count,
			})
		}
	}
	return table.Table[LevelRow]{
		Title: "Enrollment by Level",
		Columns: []table.Column[LevelRow]{
			table.Text("course", "Course Name", func(r LevelRow) string { return r.Course }),
			table.Text("level", "Level", func(r LevelRow) string { return r.Level.Label() }),
			table.Int("count", "Enrollments", func(r LevelRow) int { return r.Count }),
		},
		Rows: rows,
	}
}

func SourceTable(sources []domain.SourceCourses) table.Table[SourceRow] {
	var rows []SourceRow
	for _, s := range sources {
		for i, c := range s.Courses {
			rows = append(rows, SourceRow{
				ID:     fmt.Sprintf("%s-%s-%d", s.SourceName, c.CourseName, i),
				Source: s.SourceName,
				Course: c.CourseName,
				Count:  c.Count,
			})
		}
	}
	return table.Table[SourceRow]{
		Title: "Enrollment by Source",
		Columns: []table.Column[SourceRow]{
			table.Text("source", "Source", func(r SourceRow) string { return domain.HumanizeSource(r.Source) }),
			table.Text("course", "Course Name", func(r SourceRow) string { return r.Course }),
			table.Int("count", "Enrollments", func(r SourceRow) int { return r.Count }),
		},
		Rows: rows,
	}
}
