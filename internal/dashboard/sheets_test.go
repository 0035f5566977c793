package dashboard

import (
	"testing"

	"enrollment-dashboard/internal/aggregate"
	"enrollment-dashboard/internal/config"
	"enrollment-dashboard/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartSheets(t *testing.T) {
	v := Build(testDataset(), config.Defaults().Limits, aggregate.DefaultPalette())

	sheets, err := v.ChartSheets()
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, SheetCourseBreakdown, sheets[0].Name)
	assert.Equal(t, SheetCourseSources, sheets[1].Name)

	bars := sheets[0]
	require.Len(t, bars.Rows, 3)
	assert.Equal(t, []string{"course", "fullCourseName", "totalEnrollments", "levels_Unspecified"}, bars.Rows[0].Keys())

	total, ok := bars.Rows[1].Get("totalEnrollments")
	require.True(t, ok)
	assert.Equal(t, int64(8), total)

	assert.Equal(t,
		[]string{"course", "fullCourseName", "totalEnrollments", "levels_Unspecified", "levels_L4", "levels_L3"},
		export.Columns(bars))

	assert.Len(t, sheets[1].Rows, 5)
}
