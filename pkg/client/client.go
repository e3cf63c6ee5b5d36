// Package client is a Go consumer of the employee records API. It mirrors
// what the management front end does: authenticate, hold the issued token in
// an explicit session, and fetch employee records for presentation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Employee is the record shape returned by the API.
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	Salary      float64   `json:"salary"`
	JoiningDate time.Time `json:"joining_date"`
}

// Admin is the authenticated operator's profile.
type Admin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeFields carries the employee attributes sent on create and update.
// On update, zero-value fields are omitted and left untouched server-side.
type EmployeeFields struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Role       string   `json:"role,omitempty"`
	Department string   `json:"department,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client talks to the employee records API.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New creates a Client for the given base URL (e.g. "http://localhost:8080").
// A nil session gets a fresh one; a nil httpClient gets a default with a
// request timeout.
func New(baseURL string, session *Session, httpClient *http.Client) *Client {
	if session == nil {
		session = NewSession()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient, session: session}
}

// Session exposes the client's session for navigation gating.
func (c *Client) Session() *Session {
	return c.session
}

// Register creates a new admin account.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// Login authenticates and stores the issued token in the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return err
	}
	c.session.SetToken(resp.Token)
	return nil
}

// Logout discards the session token.
func (c *Client) Logout() {
	c.session.Clear()
}

// Me fetches the authenticated admin's profile.
func (c *Client) Me(ctx context.Context) (*Admin, error) {
	var admin Admin
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListEmployees fetches all employee records.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployee fetches a single record by id.
func (c *Client) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees/"+id, nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee creates a record and returns it with its generated id.
func (c *Client) CreateEmployee(ctx context.Context, fields EmployeeFields) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees", fields, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateEmployee merges the supplied fields into the record.
func (c *Client) UpdateEmployee(ctx context.Context, id string, fields EmployeeFields) (*Employee, error) {
	var employee Employee
	if err := c.do(ctx, http.MethodPut, "/api/employees/"+id, fields, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// DeleteEmployee removes the record permanently.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/employees/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		envelope.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}
