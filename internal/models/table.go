package models

// User identifies the authenticated account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Table is a server-side table as returned by the listing and creation
// endpoints. Columns keep the server's order.
type Table struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Row maps a server column name to its scalar cell value. Rows are only
// ever produced by the server; the client never creates or mutates them.
type Row map[string]any

// TableData is a full snapshot of one table: the same shape is returned by
// the data fetch endpoint and carried by every push update. A snapshot
// always replaces the previous one wholesale.
type TableData struct {
	TableName string   `json:"tableName"`
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
}

// Snapshot pairs table data with the server-assigned sequence number when
// one was present on the wire. Seq is zero for unsequenced snapshots.
type Snapshot struct {
	Data TableData
	Seq  uint64
}
