package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrBackendUnavailable is returned when the API could not be reached at all.
var ErrBackendUnavailable = errors.New("backend unavailable")

// BackendResponse is a raw API reply.
type BackendResponse struct {
	Status int
	Body   []byte
}

func (r BackendResponse) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the body into v.
func (r BackendResponse) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Message extracts the error message the API put in the body.
func (r BackendResponse) Message(fallback string) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(r.Body, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	return fallback
}

type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBackendClient(baseURL string) *BackendClient {
	return &BackendClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Do calls the API. body may be nil, raw JSON bytes, or any value to encode as JSON.
func (b *BackendClient) Do(ctx context.Context, method, path, token string, body any) (BackendResponse, error) {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(v)
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return BackendResponse{}, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return BackendResponse{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return BackendResponse{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return BackendResponse{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	return BackendResponse{Status: resp.StatusCode, Body: data}, nil
}
