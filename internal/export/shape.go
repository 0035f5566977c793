package export

import (
	"enrollment-dashboard/internal/aggregate"
	"enrollment-dashboard/internal/domain"
)

// Standard sheet names of the enrollment report.
const (
	SheetLevels  = "Enrollment Levels"
	SheetSources = "Enrollment Sources"
	SheetStaff   = "Staff Performance"
)

var (
	levelHeaders  = []string{"Course Name", "Level", "Count"}
	sourceHeaders = []string{"Source Name", "Course Name", "Count"}
	staffHeaders  = []string{"Course Name", "Course Type", "Telecaller Enrollments", "Counsellor Enrollments", "Total Enrollments"}
)

// LevelRows emits one row per (course, level).
func LevelRows(courses []domain.CourseLevels) []Row {
	var out []Row
	for _, c := range courses {
		for _, l := range c.Levels {
			out = append(out, Row{
				{Key: "Course Name", Value: c.Course},
				{Key: "Level", Value: l.Level.Label()},
				{Key: "Count", Value: l.Count},
			})
		}
	}
	return out
}

// SourceRows emits one row per (source, course).
func SourceRows(sources []domain.SourceCourses) []Row {
	var out []Row
	for _, s := range sources {
		for _, c := range s.Courses {
			out = append(out, Row{
				{Key: "Source Name", Value: domain.SpaceSource(s.SourceName)},
				{Key: "Course Name", Value: c.CourseName},
				{Key: "Count", Value: c.Count},
			})
		}
	}
	return out
}

// StaffRows compares telecaller and counsellor enrollments over every course
// either side reports, with a combined total.
func StaffRows(telecaller, counsellor []domain.StaffCourse) []Row {
	joined := aggregate.CompareUnion(telecaller, counsellor)
	out := make([]Row, 0, len(joined))
	for _, r := range joined {
		out = append(out, Row{
			{Key: "Course Name", Value: r.FullCourseName},
			{Key: "Course Type", Value: string(r.Type)},
			{Key: "Telecaller Enrollments", Value: r.Telecaller},
			{Key: "Counsellor Enrollments", Value: r.Counsellor},
			{Key: "Total Enrollments", Value: r.Total()},
		})
	}
	return out
}

// DatasetSheets builds the three sheets of the enrollment report. Headers are
// fixed so an empty dataset still gets a labelled sheet.
func DatasetSheets(ds domain.Dataset) []Sheet {
	return []Sheet{
		{Name: SheetLevels, Rows: LevelRows(ds.Levels), Headers: levelHeaders},
		{Name: SheetSources, Rows: SourceRows(ds.Sources), Headers: sourceHeaders},
		{Name: SheetStaff, Rows: StaffRows(ds.Telecaller, ds.Counsellor), Headers: staffHeaders},
	}
}
