package aggregate

import (
	"testing"

	"enrollment-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levels(course string, kv ...any) domain.CourseLevels {
	c := domain.CourseLevels{Course: course}
	for i := 0; i+1 < len(kv); i += 2 {
		c.Levels = append(c.Levels, domain.LevelCount{Level: domain.NewLevel(kv[i].(string)), Count: kv[i+1].(int)})
	}
	return c
}

func TestGroupSumKeepsFirstSeenOrder(t *testing.T) {
	got := GroupSum([]Pair{
		{"b", 1}, {"a", 2}, {"b", 3}, {"c", 0}, {"a", 4},
	})
	assert.Equal(t, []Bucket{{"b", 4}, {"a", 6}, {"c", 0}}, got)
	assert.Empty(t, GroupSum(nil))
}

func TestLevelTotals(t *testing.T) {
	courses := []domain.CourseLevels{
		levels("A Levels Science", "UNKNOWN", 10),
		levels("Acca", "UNKNOWN", 5, "l3", 1),
		levels("MBA", "l4", 2, "l5", 1, "UNKNOWN", 6),
		levels("BSc (Hons) Computer Science", "l4", 3, "l3", 3, "UNKNOWN", 7),
	}

	got := LevelTotals(courses)
	assert.Equal(t, []Bucket{
		{"UNKNOWN", 28},
		{"l3", 4},
		{"l4", 5},
		{"l5", 1},
	}, got)

	leaves := 0
	for _, c := range courses {
		leaves += c.Total()
	}
	assert.Equal(t, leaves, Total(got))
}

func TestLevelTotalsSingleUnknown(t *testing.T) {
	got := LevelTotals([]domain.CourseLevels{levels("A Levels Science", "UNKNOWN", 10)})
	require.Equal(t, []Bucket{{"UNKNOWN", 10}}, got)

	display := Relabel(got, domain.LevelLabel)
	assert.Equal(t, []Bucket{{"Unspecified", 10}}, display)
	assert.Equal(t, "UNKNOWN", got[0].Name, "relabel must not touch its input")
}

func TestSourceTotals(t *testing.T) {
	sources := []domain.SourceCourses{
		{SourceName: "WALKIN", Courses: []domain.CourseCount{{CourseName: "MBA", Count: 9}, {CourseName: "BBA", Count: 6}}},
		{SourceName: "GOOGLE_ADS", Courses: []domain.CourseCount{{CourseName: "BSc Test", Count: 1}}},
		{SourceName: "WALKIN", Courses: []domain.CourseCount{{CourseName: "Acca", Count: 2}}},
		{SourceName: "AGENCY"},
	}

	got := SourceTotals(sources)
	assert.Equal(t, []Bucket{{"WALKIN", 17}, {"GOOGLE_ADS", 1}, {"AGENCY", 0}}, got)
	assert.Equal(t, []Bucket{{"Walkin", 17}, {"Google Ads", 1}, {"Agency", 0}}, Relabel(got, domain.HumanizeSource))
}

func TestTypeTotals(t *testing.T) {
	got := TypeTotals([]domain.StaffCourse{
		{CourseName: "BBA", Count: 1, Type: domain.TypeBachelors},
		{CourseName: "Acca", Count: 3, Type: domain.TypeACCA},
		{CourseName: "Diploma", Count: 2, Type: "DIPLOMA"},
		{CourseName: "BSc", Count: 5, Type: domain.TypeBachelors},
		{CourseName: "Misc", Count: 1},
	})
	assert.Equal(t, []Bucket{{"BACHELORS", 6}, {"ACCA", 3}, {"OTHER", 3}}, got)
}
