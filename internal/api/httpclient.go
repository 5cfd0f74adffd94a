package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"sheetdash/internal/models"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// bearerTransport injects the current token (when present) and a request
// id into every outgoing request.
type bearerTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	token, err := t.tokens.GetToken(req.Context())
	if err == nil && token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	clone.Header.Set("X-Request-Id", uuid.NewString())
	clone.Header.Set("Content-Type", "application/json")

	return t.next.RoundTrip(clone)
}

// NewHTTPClient builds a client against baseURL. tokens supplies the
// bearer credential per request; timeout bounds each call.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &bearerTransport{tokens: tokens, next: http.DefaultTransport},
		},
		timeout: timeout,
	}
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (string, *models.User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Verify(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) CreateTable(ctx context.Context, name string, columns []models.Column) (*models.Table, error) {
	body := struct {
		TableName string          `json:"tableName"`
		Columns   []models.Column `json:"columns"`
	}{TableName: name, Columns: columns}

	var table models.Table
	if err := c.do(ctx, http.MethodPost, "/sheets/table", body, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *HTTPClient) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := c.do(ctx, http.MethodGet, "/sheets/tables", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *HTTPClient) GetTableData(ctx context.Context, tableID string) (*models.TableData, error) {
	var data models.TableData
	path := "/sheets/table/" + url.PathEscape(tableID)
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// do runs one request/response cycle. A transport failure maps to an
// APIError wrapping ErrUnavailable; a non-2xx status to an APIError with
// the server's message (or the generic default), wrapping ErrUnauthorized
// for 401/403.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error(), Err: ErrUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	return nil
}

func (c *HTTPClient) statusError(resp *http.Response) error {
	message := defaultErrorMessage

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		message = body.Message
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: message}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		apiErr.Err = ErrUnauthorized
	}
	return apiErr
}
