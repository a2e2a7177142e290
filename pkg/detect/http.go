package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// sharedTransport provides connection pooling across all remote detector
// clients. Reusing TCP connections avoids repeated TLS handshakes when
// several detectors point at the same backend.
var sharedTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// NewHTTPClient creates an HTTP client with shared transport and specified
// timeout. All remote detector clients should use this.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: sharedTransport,
	}
}

// APIError represents an HTTP API error with status code and response body.
// Use errors.As() to extract status code for programmatic handling.
type APIError struct {
	StatusCode int
	Body       string
	Service    string
}

func (e *APIError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Service, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// CheckResponse returns an APIError if the response status is not 2xx.
// The response body is read and included in the error for debugging.
func CheckResponse(resp *http.Response, service string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	// Limit body read to prevent memory exhaustion from malicious responses
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Service:    service,
	}
}

// RemoteTextDetector implements TextDetector against a real detection
// service over a JSON POST. Not wired by default; constructed in main when
// a backend URL is configured.
type RemoteTextDetector struct {
	baseURL string
	service string
	client  *http.Client
}

// NewRemoteTextDetector creates a client for a remote detection service.
// service names the backend in error messages.
func NewRemoteTextDetector(baseURL, service string, timeout time.Duration) *RemoteTextDetector {
	return &RemoteTextDetector{
		baseURL: baseURL,
		service: service,
		client:  NewHTTPClient(timeout),
	}
}

// Detect posts the content to the remote service and decodes its verdict.
func (d *RemoteTextDetector) Detect(ctx context.Context, content string) (TextResult, error) {
	reqBody, err := json.Marshal(map[string]string{"text": content})
	if err != nil {
		return TextResult{}, fmt.Errorf("failed to encode detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/detect", bytes.NewReader(reqBody))
	if err != nil {
		return TextResult{}, fmt.Errorf("failed to build detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return TextResult{}, fmt.Errorf("detect request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp, d.service); err != nil {
		return TextResult{}, err
	}

	var result TextResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return TextResult{}, fmt.Errorf("failed to decode detect response: %w", err)
	}
	return result, nil
}
