// Package api implements the dashboard's REST API client. The Client
// interface is the only surface the rest of the application sees; the
// concrete HTTP implementation lives in httpclient.go.
package api

import (
	"context"

	"sheetdash/internal/models"
)

// Client issues requests against the backend REST API.
//
// Every call is a single attempt; no retry policy. Each call attaches the
// currently stored token as a bearer credential when one exists and omits
// it otherwise, so public endpoints keep working before login.
type Client interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Signup(ctx context.Context, name, email, password string) (string, *models.User, error)
	Verify(ctx context.Context) (*models.User, error)

	CreateTable(ctx context.Context, name string, columns []models.Column) (*models.Table, error)
	ListTables(ctx context.Context) ([]models.Table, error)
	GetTableData(ctx context.Context, tableID string) (*models.TableData, error)
}

// TokenSource supplies the bearer credential attached to outgoing
// requests. The local store satisfies it directly.
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}
