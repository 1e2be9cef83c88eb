package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/coach-admin/internal/config"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/pkg/ctxutil"
)

const maxBodyBytes = 8 << 20

// Session is the token capability the client needs. The client reads the
// bearer token per request and clears the session when the backend
// answers 401.
type Session interface {
	Token() string
	Clear() error
}

// Client performs JSON requests against the admin REST backend.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	session     Session
	retryDelay  time.Duration
	readRetries int
	userAgent   string
	profilePath string
	log         *slog.Logger
}

// NewClient creates a Client from the api config section.
func NewClient(cfg config.APIConfig, session Session, logger *slog.Logger) *Client {
	profilePath := cfg.ProfilePath
	if profilePath == "" {
		profilePath = "profile"
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		session:     session,
		retryDelay:  cfg.RetryDelay,
		readRetries: cfg.ReadRetries,
		userAgent:   cfg.UserAgent,
		profilePath: strings.Trim(profilePath, "/"),
		log:         logger.With("adapter", "api"),
	}
}

// call describes one request. fallback is the user-facing message used when
// the backend gives no usable error text.
type call struct {
	method   string
	path     string
	query    url.Values
	body     any
	fallback string
}

// do executes c and returns the raw response body of a 2xx answer.
func (cl *Client) do(ctx context.Context, c call) ([]byte, error) {
	ctx, reqID := ctxutil.EnsureRequestID(ctx)

	reqURL := cl.baseURL + "/" + strings.TrimLeft(c.path, "/")
	if len(c.query) > 0 {
		reqURL += "?" + c.query.Encode()
	}

	var payload []byte
	if c.body != nil {
		var err error
		payload, err = json.Marshal(c.body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", c.method, c.path, err)
		}
	}

	newRequest := func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, c.method, reqURL, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", reqID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if cl.userAgent != "" {
			req.Header.Set("User-Agent", cl.userAgent)
		}
		if cl.session != nil {
			if token := cl.session.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}
		return req, nil
	}

	start := time.Now()
	resp, err := cl.doWithRetry(ctx, c, newRequest)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: %s %s: %w", c.method, c.path, ctx.Err())
		}
		cl.log.ErrorContext(ctx, "api request failed",
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		return nil, &domain.NetworkError{Op: c.method + " " + c.path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.NetworkError{Op: c.method + " " + c.path, Err: fmt.Errorf("read body: %w", err)}
	}

	cl.log.DebugContext(ctx, "api response",
		slog.String("method", c.method),
		slog.String("path", c.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", reqID),
		slog.String("page", ctxutil.PageFromCtx(ctx)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && cl.session != nil {
			if err := cl.session.Clear(); err != nil {
				cl.log.WarnContext(ctx, "clear session", slog.String("error", err.Error()))
			}
		}
		return nil, &domain.RemoteError{
			Status:  resp.StatusCode,
			Message: errorMessage(body, c.fallback),
		}
	}

	return body, nil
}

// doWithRetry executes the request with at most readRetries retries on 5xx
// or network errors. Only GET requests are retried.
func (cl *Client) doWithRetry(ctx context.Context, c call, newRequest func() (*http.Request, error)) (*http.Response, error) {
	attempts := 1
	if c.method == http.MethodGet {
		attempts += cl.readRetries
	}

	var (
		resp *http.Response
		err  error
	)
	for attempt := 1; ; attempt++ {
		var req *http.Request
		req, err = newRequest()
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err = cl.httpClient.Do(req)

		shouldRetry := err != nil || resp.StatusCode >= 500
		if !shouldRetry || attempt >= attempts {
			return resp, err
		}

		// Don't retry if context is already cancelled.
		if ctx.Err() != nil {
			return resp, err
		}

		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
		}
		cl.log.WarnContext(ctx, "api retry",
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.String("reason", reason),
		)

		// Close body from the failed attempt before retrying.
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cl.retryDelay):
		}
	}
}

func (cl *Client) get(ctx context.Context, path string, query url.Values, fallback string) ([]byte, error) {
	return cl.do(ctx, call{method: http.MethodGet, path: path, query: query, fallback: fallback})
}

func (cl *Client) send(ctx context.Context, method, path string, body any, fallback string) ([]byte, error) {
	return cl.do(ctx, call{method: method, path: path, body: body, fallback: fallback})
}
