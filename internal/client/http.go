// Package client is the booking-page side of the service: it keeps the draft, prices it,
// gates submission on the payment selection and talks to the intake endpoint.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"techpark/internal/domain/models"
)

const (
	bookingsPath  = "/api/bookings"
	locationsPath = "/api/locations"
)

// HTTPClient talks to the booking service over its public HTTP surface.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithHTTPClient swaps the underlying *http.Client (tests, custom transports).
func (c *HTTPClient) WithHTTPClient(hc *http.Client) *HTTPClient {
	c.httpClient = hc
	return c
}

// BookingResponse is the intake answer, for both success and failure.
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID int64  `json:"booking_id,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// PostBooking sends one form-encoded booking. Non-2xx statuses carrying a JSON body are
// returned as a normal response; only transport and decode failures are errors.
func (c *HTTPClient) PostBooking(ctx context.Context, form url.Values) (*BookingResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bookingsPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	body, status, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var out BookingResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response (HTTP %d): %w", status, err)
	}
	return &out, nil
}

// Locations fetches the catalog the server prices with.
func (c *HTTPClient) Locations(ctx context.Context) ([]models.Location, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+locationsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	body, status, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", status, string(body))
	}

	var out struct {
		Locations []models.Location `json:"locations"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out.Locations, nil
}

func (c *HTTPClient) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
