// Package fieldclient talks to a running field API server. The calculation is
// a closed-form formula, so every call can degrade to an identical local
// computation when the server is unreachable.
package fieldclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Kawakarlyndo/Campomagnetico/internal/field"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 5 * time.Second

// Source reports where a batch of samples was computed.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Client posts compute requests to a field API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API server at baseURL (for example
// "http://localhost:8080"). Outgoing requests are traced via otelhttp.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Compute sends the batch to the server and returns its samples in order.
func (c *Client) Compute(ctx context.Context, current float64, distances []float64) ([]field.Sample, error) {
	reqBody, err := json.Marshal(field.ComputeRequest{Current: current, Distances: distances})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/compute", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call compute: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			if resp.StatusCode == http.StatusBadRequest {
				return nil, &field.InvalidInputError{Reason: apiErr.Error}
			}
			return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var body field.ComputeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	samples := make([]field.Sample, 0, len(body.Results))
	for _, r := range body.Results {
		samples = append(samples, field.Sample{Distance: r.Distance, Magnitude: r.Field})
	}
	return samples, nil
}

// ComputeWithFallback tries the server first and computes locally when the
// call fails for any reason other than the server rejecting the input.
// Results are identical either way. A nil client always computes locally.
func (c *Client) ComputeWithFallback(ctx context.Context, current float64, distances []float64) ([]field.Sample, Source, error) {
	if c == nil || c.baseURL == "" {
		samples, err := field.Compute(current, distances)
		return samples, SourceLocal, err
	}

	samples, err := c.Compute(ctx, current, distances)
	if err == nil {
		return samples, SourceRemote, nil
	}

	// The server saw the input and rejected it; retrying locally would
	// reject it the same way, so keep the server's reason.
	var invalid *field.InvalidInputError
	if errors.As(err, &invalid) {
		return nil, SourceRemote, err
	}

	samples, localErr := field.Compute(current, distances)
	if localErr != nil {
		return nil, SourceLocal, localErr
	}
	return samples, SourceLocal, nil
}
