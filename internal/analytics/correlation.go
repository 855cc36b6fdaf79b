package analytics

import (
	"math"

	"bikepulse/internal/dataset"
)

// CorrelationFields are the numeric daily columns of the correlation heatmap,
// in display order. The names match the source schema, which is what the
// frontend labels its axes with.
var CorrelationFields = []string{"temp", "atemp", "hum", "windspeed", "casual", "registered", "cnt"}

// fieldValue extracts one correlation column from a record.
func fieldValue(r dataset.DayRecord, field string) float64 {
	switch field {
	case "temp":
		return r.Temp
	case "atemp":
		return r.ATemp
	case "hum":
		return r.Humidity
	case "windspeed":
		return r.Windspeed
	case "casual":
		return float64(r.Casual)
	case "registered":
		return float64(r.Registered)
	case "cnt":
		return float64(r.Count)
	}
	return math.NaN()
}

// Correlate computes the Pearson correlation matrix over CorrelationFields.
//
// The matrix is symmetric by construction: each off-diagonal pair is computed
// once and mirrored. The diagonal is exactly 1 for every field with nonzero
// variance. A field with zero variance in the filtered subset has no defined
// correlation with anything, including itself, and yields NaN cells.
func Correlate(days dataset.DayTable) Correlation {
	n := len(CorrelationFields)
	cols := make([][]float64, n)
	for i, field := range CorrelationFields {
		col := make([]float64, len(days))
		for j, r := range days {
			col[j] = fieldValue(r, field)
		}
		cols[i] = col
	}

	matrix := make([][]Metric, n)
	for i := range matrix {
		matrix[i] = make([]Metric, n)
	}
	for i := 0; i < n; i++ {
		if variance(cols[i]) > 0 {
			matrix[i][i] = 1
		} else {
			matrix[i][i] = Metric(math.NaN())
		}
		for j := i + 1; j < n; j++ {
			r := Metric(pearson(cols[i], cols[j]))
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	fields := make([]string, n)
	copy(fields, CorrelationFields)
	return Correlation{Fields: fields, Matrix: matrix}
}

// pearson returns the Pearson correlation coefficient of two equal-length
// samples, or NaN when either sample is empty or has zero variance.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

func variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	mean := sum / n
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return ss
}
