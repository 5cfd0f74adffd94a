package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"sheetdash/internal/models"
)

const tokenKey = "token"

// dynamicColumnsKey namespaces each table's dynamic column list.
func dynamicColumnsKey(tableID string) string {
	return "table_columns_" + tableID
}

// SQLiteStore keeps all client-side state in one metadata key-value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetToken(ctx context.Context) (string, error) {
	v, err := s.get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, tokenKey, []byte(token))
}

func (s *SQLiteStore) RemoveToken(ctx context.Context) error {
	return s.delete(ctx, tokenKey)
}

// GetDynamicColumns loads the table's locally-defined columns. Missing or
// malformed stored data reads as an empty list so a corrupted row can
// never take the grid down.
func (s *SQLiteStore) GetDynamicColumns(ctx context.Context, tableID string) ([]models.Column, error) {
	v, err := s.get(ctx, dynamicColumnsKey(tableID))
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return []models.Column{}, nil
	}

	var columns []models.Column
	if err := json.Unmarshal(v, &columns); err != nil {
		return []models.Column{}, nil
	}
	if columns == nil {
		columns = []models.Column{}
	}
	return columns, nil
}

func (s *SQLiteStore) SetDynamicColumns(ctx context.Context, tableID string, columns []models.Column) error {
	data, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("failed to encode dynamic columns for %s: %w", tableID, err)
	}
	return s.set(ctx, dynamicColumnsKey(tableID), data)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
