package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"perception-quiz-service/internal/domain"
)

// Client talks to a running collection endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient targets baseURL (e.g. http://localhost:8080). A nil httpClient gets a 10s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) RecordCrime(ctx context.Context, sub domain.CrimeSubmission) (domain.Ack, error) {
	var ack domain.Ack
	err := c.do(ctx, http.MethodPost, "/api/crime-responses", sub, &ack)
	return ack, err
}

func (c *Client) RecordStatus(ctx context.Context, sub domain.StatusSubmission) (domain.Ack, error) {
	var ack domain.Ack
	err := c.do(ctx, http.MethodPost, "/api/responses", sub, &ack)
	return ack, err
}

// SendCrime and SendStatus satisfy quiz.SendFunc.
func (c *Client) SendCrime(ctx context.Context, sub domain.CrimeSubmission) error {
	_, err := c.RecordCrime(ctx, sub)
	return err
}

func (c *Client) SendStatus(ctx context.Context, sub domain.StatusSubmission) error {
	_, err := c.RecordStatus(ctx, sub)
	return err
}

func (c *Client) CrimeStats(ctx context.Context) (domain.CrimeStats, error) {
	var out domain.CrimeStats
	err := c.do(ctx, http.MethodGet, "/api/crime-responses", nil, &out)
	return out, err
}

func (c *Client) StatusStats(ctx context.Context) (domain.StatusStats, error) {
	var out domain.StatusStats
	err := c.do(ctx, http.MethodGet, "/api/responses", nil, &out)
	return out, err
}

func (c *Client) Insights(ctx context.Context) (domain.Insights, error) {
	var out domain.Insights
	err := c.do(ctx, http.MethodGet, "/api/insights", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, e.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
