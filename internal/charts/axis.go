package charts

import (
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"salesdash/internal/style"
)

// dateXAxis configures a horizontal axis for date values: concise
// auto-placed labels rotated 30 degrees, grid per the active style.
func dateXAxis() chart.XAxis {
	st := style.Current()
	return chart.XAxis{
		Style: chart.Style{
			FontSize:            st.Options.TickFontSize,
			TextRotationDegrees: 30,
		},
		ValueFormatter: conciseDateFormatter,
		GridMajorStyle: chart.Style{
			StrokeColor: st.GridStrokeColor(),
			StrokeWidth: 1.0,
		},
	}
}

// conciseDateFormatter renders a tick value as a short date label
func conciseDateFormatter(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("Jan 02")
	case float64:
		return chart.TimeFromFloat64(t).Format("Jan 02")
	default:
		return ""
	}
}
