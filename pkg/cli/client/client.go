package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the conversion API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. The timeout must outlast the
// server's pipeline budget or long conversions fail client-side first.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// buildRequest creates an HTTP request with proper headers.
func (c *Client) buildRequest(method, path string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// doRequest performs an HTTP request and decodes the JSON response into
// result. The API returns a well-formed envelope on every status, so
// the body is decoded even for non-2xx responses.
func (c *Client) doRequest(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return fmt.Errorf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
			}
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// doJSONRequest performs a JSON POST-style request.
func (c *Client) doJSONRequest(method, path string, payload interface{}, result interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := c.buildRequest(method, path, body)
	if err != nil {
		return err
	}

	return c.doRequest(req, result)
}

// doGetRequest performs a GET request.
func (c *Client) doGetRequest(path string, result interface{}) error {
	req, err := c.buildRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	return c.doRequest(req, result)
}
