// Package anthropic provides an llm.Client backed by the Anthropic Messages
// API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ytsum/pkg/llm"
	"ytsum/pkg/logger"
	"ytsum/pkg/metrics"
	"ytsum/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public API origin.
	DefaultBaseURL = "https://api.anthropic.com"
	// APIVersion is sent in the anthropic-version header.
	APIVersion = "2023-06-01"
)

// Options configure a Client.
type Options struct {
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// Token is sent in the x-api-key header.
	Token string
	// Model is used for requests that do not name one.
	Model string
}

// Client talks to the Messages API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	model      string
	duration   metric.Float64Histogram
}

// Ensure Client conforms to the llm.Client interface at compile time.
var _ llm.Client = (*Client)(nil)

// New constructs a Client that performs requests with httpClient.
func New(httpClient *http.Client, opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      opts.Token,
		model:      opts.Model,
		duration:   metrics.Histogram("ytsum.llm.request.duration", "Duration of model API requests."),
	}
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// SendMessage posts req to /v1/messages and decodes the response.
func (c *Client) SendMessage(ctx context.Context, req llm.MessageRequest) (*llm.MessageResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = llm.DefaultMaxTokens
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.token)
	httpReq.Header.Set("anthropic-version", APIVersion)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.record(ctx, start, req.Model, metrics.ResultError)

		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(ctx, start, req.Model, metrics.ResultError)

		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.record(ctx, start, req.Model, metrics.ResultError)
		logger.Debug(ctx, "model API request failed",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", b))

		return nil, statusError(resp.StatusCode, b)
	}
	c.record(ctx, start, req.Model, metrics.ResultOK)

	var out llm.MessageResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &out, nil
}

func (c *Client) record(ctx context.Context, start time.Time, model, result string) {
	c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("result", result),
	))
}

// statusError maps a non-2xx response to a semantic error.
func statusError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Error.Message != "" {
		msg = ae.Error.Message
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "API request unauthorized: %s", msg)
	case status == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "API rate limited: %s", msg)
	case status == http.StatusBadRequest:
		return serrors.With(serrors.ErrBadRequest, "API rejected request: %s", msg)
	case status >= 500:
		return serrors.With(serrors.ErrUnavailable, "API unavailable (%d): %s", status, msg)
	default:
		return fmt.Errorf("API error %d: %s", status, msg)
	}
}
