package dashboard

import (
	"fmt"

	"enrollment-dashboard/internal/export"
)

// Names of the optional chart sheets.
const (
	SheetCourseBreakdown = "Course Breakdown"
	SheetCourseSources   = "Top Course Sources"
)

// ChartSheets flattens the course chart series into report sheets. Per-level
// counts become levels_<LEVEL> columns.
func (v View) ChartSheets() ([]export.Sheet, error) {
	bars, err := export.FlattenAll(v.CourseBars)
	if err != nil {
		return nil, fmt.Errorf("dashboard: course bars: %w", err)
	}
	sources, err := export.FlattenAll(v.CourseSources)
	if err != nil {
		return nil, fmt.Errorf("dashboard: course sources: %w", err)
	}
	return []export.Sheet{
		{Name: SheetCourseBreakdown, Rows: bars},
		{Name: SheetCourseSources, Rows: sources},
	}, nil
}
