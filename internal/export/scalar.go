package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// scalar normalizes a cell value for writing. Nested values are refused;
// run them through Flatten first.
func scalar(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		if f, err := t.Float64(); err == nil {
			return f, nil
		}
		return t.String(), nil
	case fmt.Stringer:
		return t.String(), nil
	}
	return nil, fmt.Errorf("export: unsupported cell value of type %T", v)
}

// formatScalar renders a normalized cell value as text.
func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}
