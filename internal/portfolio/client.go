// Package portfolio is the stateless client for the remote portfolio
// backend. Every call is a fresh round trip; nothing is retried or cached.
package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/portfolio-suite/admin-dashboard/internal/logging"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio/domain"
)

const (
	loginPath    = "/api/auth/login"
	projectsPath = "/api/projects"
	healthPath   = "/api/health"
)

// Client handles communication with the portfolio backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. The client deliberately
// carries no timeout: a hung request hangs its initiating UI affordance
// rather than failing behind the user's back.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ListOptions are the optional query parameters of GetProjects. Zero values
// are omitted from the request.
type ListOptions struct {
	Search    string
	Page      int
	Limit     int
	Featured  *bool
	SortBy    string
	SortOrder string
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	logger := logging.NewLogger(ctx)

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError("login", err)
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.LogWarnf("login", "backend returned status %d", resp.StatusCode)
		return nil, c.apiError("login", resp)
	}

	var out domain.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &out, nil
}

// LoginToken logs in and returns the bearer token, whichever payload field
// it arrived in. "" means the backend sent no token.
func (c *Client) LoginToken(ctx context.Context, email, password string) (string, error) {
	resp, err := c.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	return resp.BearerToken(), nil
}

// GetProjects fetches the project list, with query parameters included only
// when provided.
func (c *Client) GetProjects(ctx context.Context, token string, opts ListOptions) (*domain.ListResponse, error) {
	logger := logging.NewLogger(ctx)

	u, err := url.Parse(c.baseURL + projectsPath)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	q := u.Query()
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Featured != nil {
		q.Set("featured", strconv.FormatBool(*opts.Featured))
	}
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}
	if opts.SortOrder != "" {
		q.Set("sortOrder", opts.SortOrder)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError("get_projects", err)
		return nil, fmt.Errorf("projects request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.LogWarnf("get_projects", "backend returned status %d", resp.StatusCode)
		return nil, c.apiError("get_projects", resp)
	}

	var out domain.ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode projects response: %w", err)
	}
	return &out, nil
}

// CreateProject submits a new project.
func (c *Client) CreateProject(ctx context.Context, token string, payload Payload) error {
	return c.mutate(ctx, "create_project", http.MethodPost, c.baseURL+projectsPath, token, payload)
}

// UpdateProject replaces an existing project.
func (c *Client) UpdateProject(ctx context.Context, token, id string, payload Payload) error {
	return c.mutate(ctx, "update_project", http.MethodPut, c.baseURL+projectsPath+"/"+url.PathEscape(id), token, payload)
}

func (c *Client) mutate(ctx context.Context, op, method, reqURL, token string, payload Payload) error {
	logger := logging.NewLogger(ctx)

	body, contentType, err := payload.encode()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError(op, err)
		return fmt.Errorf("%s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.LogWarnf(op, "backend returned status %d", resp.StatusCode)
		return c.apiError(op, resp)
	}
	return nil
}

// DeleteProject removes a project by ID.
func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	logger := logging.NewLogger(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+projectsPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError("delete_project", err)
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.LogWarnf("delete_project", "backend returned status %d", resp.StatusCode)
		return c.apiError("delete_project", resp)
	}
	return nil
}

// Health checks the backend health endpoint. Unauthenticated.
func (c *Client) Health(ctx context.Context) (domain.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.apiError("health", resp)
	}

	var out domain.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return out, nil
}

// apiError builds an *APIError from a non-2xx response, pulling a message
// out of the body when the backend sent one.
func (c *Client) apiError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	msg := strings.TrimSpace(string(raw))
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else if envelope.Error != "" {
			msg = envelope.Error
		}
	}

	return &APIError{Op: op, StatusCode: resp.StatusCode, Message: msg}
}
