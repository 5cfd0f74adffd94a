package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnType_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want ColumnType
	}{
		{"text", ColumnTypeText},
		{"date", ColumnTypeDate},
		{"TEXT", ColumnTypeText},
		{"  Date ", ColumnTypeDate},
	}
	for _, tc := range tests {
		got, err := ParseColumnType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseColumnType_UnknownRejected(t *testing.T) {
	for _, in := range []string{"", "number", "datetime", "string"} {
		_, err := ParseColumnType(in)
		require.Error(t, err, in)
	}
}

func TestColumnType_UnmarshalJSON_Normalizes(t *testing.T) {
	var c Column
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Due","type":"DATE"}`), &c))
	assert.Equal(t, ColumnTypeDate, c.Type)
}

func TestColumnType_UnmarshalJSON_RejectsUnknown(t *testing.T) {
	var c Column
	err := json.Unmarshal([]byte(`{"name":"Amount","type":"currency"}`), &c)
	require.Error(t, err)
}

func TestTableData_UnmarshalJSON_FullSnapshot(t *testing.T) {
	payload := `{
		"tableName": "Orders",
		"columns": [{"name":"Date","type":"date"},{"name":"Amount","type":"text"}],
		"rows": [{"Date":"2026-01-02","Amount":"12.50"}]
	}`

	var data TableData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))

	assert.Equal(t, "Orders", data.TableName)
	require.Len(t, data.Columns, 2)
	assert.Equal(t, ColumnTypeDate, data.Columns[0].Type)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "12.50", data.Rows[0]["Amount"])
}
