package domain

// DatabaseTable is one row of the database-console table listing.
type DatabaseTable struct {
	TableName string `json:"tableName"`
	RowCount  int64  `json:"rowCount"`
}

// TableColumn describes a column of a backend table.
type TableColumn struct {
	ColumnName    string `json:"columnName"`
	DataType      string `json:"dataType"`
	IsNullable    bool   `json:"isNullable"`
	ColumnDefault string `json:"columnDefault,omitempty"`
}

// TableStats reports size information for a table.
type TableStats struct {
	RowCount  int64  `json:"rowCount"`
	TableSize string `json:"tableSize"`
	IndexSize string `json:"indexSize"`
}

// QueryResult is the outcome of an ad-hoc read-only query.
type QueryResult struct {
	Rows     []map[string]any `json:"rows,omitempty"`
	RowCount int              `json:"rowCount,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// TableRowsPage is one page of raw table rows.
type TableRowsPage struct {
	Rows  []map[string]any `json:"rows"`
	Total int64            `json:"total"`
}

// RowsQuery paginates a table-rows request.
type RowsQuery struct {
	Limit  int
	Offset int
}
