package client

import (
	"net/http"
	"net/url"

	"url2md-go/pkg/models"
)

// Health fetches the extended liveness payload.
func (c *Client) Health() (*models.HealthDetail, error) {
	var health models.HealthDetail
	if err := c.doGetRequest("/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Convert submits a URL for conversion with the given options map.
func (c *Client) Convert(rawURL string, options map[string]any) (*models.ConversionResult, error) {
	payload := models.ConvertRequest{
		URL:     rawURL,
		Options: options,
	}

	var result models.ConversionResult
	if err := c.doJSONRequest(http.MethodPost, "/convert", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConvertSimple submits a URL via the GET form, for quick tests.
func (c *Client) ConvertSimple(rawURL string) (*models.ConversionResult, error) {
	var result models.ConversionResult
	path := "/convert?url=" + url.QueryEscape(rawURL)
	if err := c.doGetRequest(path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
