// Package store persists the small amount of client-side state the
// dashboard owns: the auth token and the per-table dynamic column lists.
// Everything lives in a single sqlite key-value table; the server never
// sees any of it.
package store

import (
	"context"

	"sheetdash/internal/models"
)

// Store is the local key-value adapter.
//
// Contract:
//   - GetToken returns "" (no error) when no token is stored.
//   - SetToken / RemoveToken overwrite / delete the stored token;
//     RemoveToken is idempotent.
//   - GetDynamicColumns returns an empty list when nothing is stored for
//     the table or the stored payload is malformed; it never fails the
//     caller over bad data.
//   - SetDynamicColumns overwrites the table's list wholesale. Append
//     semantics live a layer up; the store is last-write-wins.
type Store interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	RemoveToken(ctx context.Context) error

	GetDynamicColumns(ctx context.Context, tableID string) ([]models.Column, error)
	SetDynamicColumns(ctx context.Context, tableID string, columns []models.Column) error

	Close() error
}
