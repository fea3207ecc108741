// Package publish sends edited expressions to a remote endpoint as
// {"cron": "<value>"} JSON documents.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Config holds the endpoint and limits for publishing.
type Config struct {
	URL        string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with no URL, which disables publishing.
func DefaultConfig() Config {
	return Config{
		TimeoutMs:  5000,
		MaxRetries: 0,
	}
}

// Enabled reports whether a URL is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

// Publisher delivers expression values.
type Publisher interface {
	Publish(ctx context.Context, value string) error
}

// payload is the JSON body sent on every change.
type payload struct {
	Cron string `json:"cron"`
}

type httpPublisher struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPPublisher creates a Publisher that POSTs to cfg.URL.
func NewHTTPPublisher(cfg Config, observer Observer) Publisher {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpPublisher{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (p *httpPublisher) Publish(ctx context.Context, value string) error {
	start := time.Now()

	if p.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	var lastErr error
	status := 0
	for i := 0; i < 1+p.cfg.MaxRetries; i++ {
		status, lastErr = p.post(ctx, value)
		if lastErr == nil {
			p.observer.OnPublish(PublishEvent{
				Value:     value,
				Status:    status,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return nil
		}
		if ctx.Err() != nil || errors.Is(lastErr, ErrRejected) {
			break
		}
	}

	err := classify(ctx, lastErr)
	p.observer.OnPublish(PublishEvent{
		Value:     value,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Err:       err,
	})
	return err
}

func (p *httpPublisher) post(ctx context.Context, value string) (int, error) {
	data, err := json.Marshal(payload{Cron: value})
	if err != nil {
		return 0, fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.URL, bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, bytes.TrimSpace(body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrRejected):
		return err
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
