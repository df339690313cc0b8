package analysis

import "time"

// PricePoint is one historical close.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// ForecastPoint is one predicted close with optional confidence bounds.
// Bounds pass through to the chart unchanged; the builder never computes
// them.
type ForecastPoint struct {
	Date       time.Time
	Price      float64
	LowerBound *float64
	UpperBound *float64
}

// ChartPoint is one point of the merged dashboard series.
type ChartPoint struct {
	Date         time.Time
	Price        float64
	IsPrediction bool
	LowerBound   *float64
	UpperBound   *float64
}

// ChartSeries is a date-ascending sequence with the invariant that once
// IsPrediction turns true it stays true; historical points never follow
// prediction points.
type ChartSeries []ChartPoint

// MergeSeries concatenates the historical and predicted sequences into one
// chart series, tagging each point. It does not re-sort or de-duplicate:
// callers supply each input already date-ordered and the two ranges must not
// overlap.
func MergeSeries(historical []PricePoint, predicted []ForecastPoint) ChartSeries {
	series := make(ChartSeries, 0, len(historical)+len(predicted))
	for _, p := range historical {
		series = append(series, ChartPoint{
			Date:  p.Date,
			Price: p.Price,
		})
	}
	for _, p := range predicted {
		series = append(series, ChartPoint{
			Date:         p.Date,
			Price:        p.Price,
			IsPrediction: true,
			LowerBound:   p.LowerBound,
			UpperBound:   p.UpperBound,
		})
	}
	return series
}

// ForecastBoundary returns the date of the first prediction point, where the
// chart draws its historical/forecast marker. The second return is false when
// the series holds no prediction points, in which case no marker is drawn.
func ForecastBoundary(series ChartSeries) (time.Time, bool) {
	for _, p := range series {
		if p.IsPrediction {
			return p.Date, true
		}
	}
	return time.Time{}, false
}
