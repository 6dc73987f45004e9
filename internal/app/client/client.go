// Package client talks to the employees HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"employees/internal/domain/employee"

	"golang.org/x/exp/slog"
)

const (
	employeesPath    = "/employees"
	defaultUserAgent = "employees-client/1.0"
)

var ErrNotFound = errors.New("employee not found")

// APIError is a non-success answer that carried a body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error: status %d: %s", e.Status, e.Message)
}

type Client struct {
	http      *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

// New returns a client for the server at address. A bare host:port is
// reached over plain http.
func New(address string, timeout time.Duration, log *slog.Logger) *Client {
	baseURL := strings.TrimRight(address, "/")
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:       log.With("component", "client"),
		baseURL:   baseURL,
		userAgent: defaultUserAgent,
	}
}

func (c *Client) Health(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) List(ctx context.Context) ([]employee.Employee, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, employeesPath, nil)
	if err != nil {
		return nil, err
	}

	var list employee.List
	if err := c.parseResponse(resp, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *Client) Get(ctx context.Context, id int32) (employee.Employee, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, employeePath(id), nil)
	if err != nil {
		return employee.Employee{}, err
	}

	var e employee.Employee
	if err := c.parseResponse(resp, &e); err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// Create returns the identifier the server assigned, read from Location.
func (c *Client) Create(ctx context.Context, p employee.Patch) (int32, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, employeesPath, toBody(p))
	if err != nil {
		return 0, err
	}

	location := resp.Header.Get("Location")
	if err := c.parseResponse(resp, nil); err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(path.Base(location), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unexpected location %q: %w", location, err)
	}
	return int32(id), nil
}

// Update sends only the fields present in p. The server does not report
// whether an employee matched.
func (c *Client) Update(ctx context.Context, id int32, p employee.Patch) error {
	resp, err := c.doRequest(ctx, http.MethodPost, employeePath(id), toBody(p))
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) Delete(ctx context.Context, id int32) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, employeePath(id), nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func employeePath(id int32) string {
	return employeesPath + "/" + strconv.FormatInt(int64(id), 10)
}

type body struct {
	FName *string `json:"fname,omitempty"`
	LName *string `json:"lname,omitempty"`
	Age   *int32  `json:"age,omitempty"`
	Title *string `json:"title,omitempty"`
}

func toBody(p employee.Patch) body {
	return body{FName: p.FName, LName: p.LName, Age: p.Age, Title: p.Title}
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

func (c *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("received response", "status", resp.StatusCode, "body", string(data))

	if resp.StatusCode == http.StatusNotFound && len(bytes.TrimSpace(data)) == 0 {
		return ErrNotFound
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		msg := http.StatusText(resp.StatusCode)
		if err := json.Unmarshal(data, &errResp); err == nil {
			switch {
			case errResp.Error != "":
				msg = errResp.Error
			case errResp.Message != "":
				msg = errResp.Message
			}
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
