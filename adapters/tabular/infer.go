package tabular

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Column type labels exposed to the dashboard.
const (
	TypeNumeric     = "numeric"
	TypeCategorical = "categorical"
	TypeBoolean     = "boolean"
	TypeTimestamp   = "timestamp"
	TypeString      = "string"
)

const inferSampleCap = 500

// InferColumnTypes classifies each column by sampling up to 500 evenly
// distributed rows. Requires 80%+ of non-empty values to match for a
// numeric/boolean/timestamp verdict; low-cardinality columns come back
// categorical.
func (r *DataReader) InferColumnTypes(data *TableData) map[string]string {
	columnTypes := make(map[string]string, len(data.Headers))
	indices := stratifiedSample(len(data.Rows), inferSampleCap)

	for _, header := range data.Headers {
		values := make([]string, 0, len(indices))
		unique := make(map[string]bool)

		for _, idx := range indices {
			v, ok := data.Rows[idx][header]
			if !ok || v == "" {
				continue
			}
			values = append(values, v)
			unique[v] = true
		}

		columnTypes[header] = classify(values, len(unique))
	}

	return columnTypes
}

func classify(values []string, uniqueCount int) string {
	if len(values) == 0 {
		return TypeString
	}

	numCount, boolCount, timeCount := 0, 0, 0
	for _, v := range values {
		if isNumeric(v) {
			numCount++
		}
		if isBoolean(v) {
			boolCount++
		}
		if isTimestamp(v) {
			timeCount++
		}
	}

	threshold := int(float64(len(values)) * 0.8)
	uniqueRatio := float64(uniqueCount) / float64(len(values))

	switch {
	case boolCount >= threshold:
		return TypeBoolean
	case timeCount >= threshold:
		return TypeTimestamp
	case numCount >= threshold:
		// Low-cardinality numeric codes behave like categories
		if uniqueRatio < 0.1 && uniqueCount <= 20 {
			return TypeCategorical
		}
		return TypeNumeric
	case uniqueRatio < 0.1 && uniqueCount <= 20:
		return TypeCategorical
	default:
		return TypeString
	}
}

func isNumeric(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBoolean(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "false", "yes", "no":
		return true
	}
	return false
}

var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

func isTimestamp(s string) bool {
	s = strings.TrimSpace(s)
	for _, format := range timestampFormats {
		if _, err := time.Parse(format, s); err == nil {
			return true
		}
	}
	return false
}

// stratifiedSample returns evenly distributed row indices across the dataset
func stratifiedSample(totalRows, sampleSize int) []int {
	if sampleSize >= totalRows {
		indices := make([]int, totalRows)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	indices := make([]int, 0, sampleSize)
	step := float64(totalRows) / float64(sampleSize)
	for i := 0; i < sampleSize; i++ {
		idx := int(math.Round(float64(i) * step))
		if idx < totalRows {
			indices = append(indices, idx)
		}
	}
	return indices
}
