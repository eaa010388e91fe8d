package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadDataCSV(t *testing.T) {
	path := writeTempCSV(t, "well_id,density,viscosity\nW-101,15.8,55\nW-102,16.4,48\nW-103,13.2,60\n")

	reader := NewDataReader(path)
	data, err := reader.ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"well_id", "density", "viscosity"}, data.Headers)
	assert.Len(t, data.Rows, 3)
	assert.Equal(t, "W-101", data.Rows[0]["well_id"])
	assert.Equal(t, "16.4", data.Rows[1]["density"])
	assert.Equal(t, "60", data.Rows[2]["viscosity"])
}

func TestReadDataTrimsWhitespace(t *testing.T) {
	path := writeTempCSV(t, " name , value \n foo , 42 \n")

	reader := NewDataReader(path)
	data, err := reader.ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "value"}, data.Headers)
	assert.Equal(t, "foo", data.Rows[0]["name"])
	assert.Equal(t, "42", data.Rows[0]["value"])
}

func TestReadDataMissingFile(t *testing.T) {
	reader := NewDataReader("/nonexistent/path/catalog.csv")
	_, err := reader.ReadData()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadDataHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "a,b,c\n")

	reader := NewDataReader(path)
	_, err := reader.ReadData()
	assert.Error(t, err)
}

func TestReadDataIdempotent(t *testing.T) {
	path := writeTempCSV(t, "name,density_ppg\nClass G,15.8\nLite,12.5\n")

	reader := NewDataReader(path)
	first, err := reader.ReadData()
	require.NoError(t, err)
	second, err := reader.ReadData()
	require.NoError(t, err)

	assert.Equal(t, first.Headers, second.Headers)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestReadDataRaggedRow(t *testing.T) {
	// Extra cells beyond the header count are dropped by processRows,
	// but encoding/csv rejects inconsistent field counts first.
	path := writeTempCSV(t, "a,b\n1,2,3\n")

	reader := NewDataReader(path)
	_, err := reader.ReadData()
	assert.Error(t, err)
}

func TestInferColumnTypes(t *testing.T) {
	path := writeTempCSV(t,
		"name,density_ppg,retarded,mixed_on\n"+
			"Class G,15.8,false,2024-01-15\n"+
			"Class H,16.4,true,2024-02-20\n"+
			"Lite,12.5,false,2024-03-05\n"+
			"Tail,16.2,true,2024-04-11\n"+
			"Lead,13.0,false,2024-05-30\n")

	reader := NewDataReader(path)
	data, err := reader.ReadData()
	require.NoError(t, err)

	types := reader.InferColumnTypes(data)
	assert.Equal(t, TypeString, types["name"])
	assert.Equal(t, TypeNumeric, types["density_ppg"])
	assert.Equal(t, TypeBoolean, types["retarded"])
	assert.Equal(t, TypeTimestamp, types["mixed_on"])
}

func TestStratifiedSample(t *testing.T) {
	t.Run("small dataset returns all rows", func(t *testing.T) {
		indices := stratifiedSample(10, 500)
		assert.Len(t, indices, 10)
		assert.Equal(t, 0, indices[0])
		assert.Equal(t, 9, indices[9])
	})

	t.Run("large dataset is capped", func(t *testing.T) {
		indices := stratifiedSample(10000, 500)
		assert.Len(t, indices, 500)
		for _, idx := range indices {
			assert.Less(t, idx, 10000)
		}
	})
}
