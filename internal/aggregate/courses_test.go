package aggregate

import (
	"testing"

	"enrollment-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseBars(t *testing.T) {
	courses := []domain.CourseLevels{
		levels("A Level Created", "UNKNOWN", 2),
		levels("BBA (Hons) Business and Management", "l5", 1, "UNKNOWN", 8, "l4", 1),
		levels("MBA", "l4", 2, "l5", 1, "UNKNOWN", 6),
		levels("Empty"),
	}

	got := CourseBars(courses, 2)
	require.Len(t, got, 2)

	assert.Equal(t, "BBA (Hons) Business ...", got[0].Course)
	assert.Equal(t, "BBA (Hons) Business and Management", got[0].FullCourseName)
	assert.Equal(t, 10, got[0].TotalEnrollments)
	assert.Equal(t, map[string]int{"L5": 1, "Unspecified": 8, "L4": 1}, got[0].Levels)

	assert.Equal(t, "MBA", got[1].Course)
	assert.Equal(t, 9, got[1].TotalEnrollments)
}

func TestCourseSources(t *testing.T) {
	sources := []domain.SourceCourses{
		{SourceName: "WALKIN", Courses: []domain.CourseCount{{CourseName: "Masters In Information Management", Count: 7}, {CourseName: "MBA", Count: 9}}},
		{SourceName: "SOCIAL_MEDIA", Courses: []domain.CourseCount{{CourseName: "Acca", Count: 7}, {CourseName: "BSc Test", Count: 0}}},
	}

	got := CourseSources(sources, 15)
	assert.Equal(t, []CourseSource{
		{Source: "WALKIN", Course: "MBA", FullCourseName: "MBA", Count: 9},
		{Source: "WALKIN", Course: "Masters In Information Ma...", FullCourseName: "Masters In Information Management", Count: 7},
		{Source: "SOCIAL MEDIA", Course: "Acca", FullCourseName: "Acca", Count: 7},
	}, got)
}

func TestSummarize(t *testing.T) {
	ds := domain.Dataset{
		Levels: []domain.CourseLevels{
			levels("Acca", "UNKNOWN", 5, "l3", 1),
			levels("MBA", "l4", 2),
		},
		Sources: []domain.SourceCourses{{SourceName: "WALKIN"}, {SourceName: "GOOGLE"}, {SourceName: "AGENCY"}},
	}

	assert.Equal(t, Summary{TotalEnrollments: 8, TotalCourses: 2, TotalSources: 3}, Summarize(ds))
}
