package tabular

// RowData represents a data row as column-name → trimmed string value
type RowData map[string]string

// TableData represents a complete loaded dataset
type TableData struct {
	Headers []string // Column headers in file order
	Rows    []RowData
}
