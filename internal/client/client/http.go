package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/session"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/google/uuid"
)

const refreshPath = "/refresh/"

// HTTPClient talks to the NoteVault REST API. Every authenticated call carries
// the stored access token; a 401 triggers one refresh and one retry.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     logging.Logger

	onExpired func(ctx context.Context)

	refreshMu sync.Mutex
}

type Option func(*HTTPClient)

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying *http.Client, keeping any timeout
// set on it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithSessionExpiredHook registers fn to run after a failed refresh has
// cleared the session. The terminal client uses it to drop back to the login
// prompt.
func WithSessionExpiredHook(fn func(ctx context.Context)) Option {
	return func(c *HTTPClient) { c.onExpired = fn }
}

func NewHTTPClient(baseURL string, store session.Store, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
		log:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Call sends an authenticated request. body, if not nil, is JSON encoded.
// Caller headers are applied on top of the defaults. Any status other than a
// curable 401 is returned to the caller as is; the caller owns resp.Body.
func (c *HTTPClient) Call(ctx context.Context, method, path string, body any, header http.Header) (*http.Response, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	access, err := c.store.Get(ctx, session.KeyAccess)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}

	resp, err := c.send(ctx, method, path, payload, header, access)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	drain(resp)

	access, err = c.refresh(ctx)
	if err != nil {
		return nil, err
	}

	c.log.Debug(ctx, "retrying after refresh", "method", method, "path", path)
	return c.send(ctx, method, path, payload, header, access)
}

// callPublic sends a request without the Authorization header and without
// the refresh dance. Used by login, register and refresh.
func (c *HTTPClient) callPublic(ctx context.Context, method, path string, body any) (*http.Response, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, method, path, payload, nil, "")
}

func (c *HTTPClient) send(ctx context.Context, method, path string, payload []byte, header http.Header, access string) (*http.Response, error) {
	var rdr io.Reader
	if payload != nil {
		rdr = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	if access != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+access)
	}
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	for k, vv := range header {
		req.Header.Del(k)
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, &NetworkError{Err: err}
	}

	c.log.Debug(ctx, "request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start),
	)
	return resp, nil
}

// refresh trades the stored refresh token for a new access token. A rejected
// or missing refresh token ends the session.
func (c *HTTPClient) refresh(ctx context.Context) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken, err := c.store.Get(ctx, session.KeyRefresh)
	if err != nil {
		return "", fmt.Errorf("read refresh token: %w", err)
	}
	if refreshToken == "" {
		return "", c.expire(ctx, common.ErrNoRefreshToken)
	}

	res, err := c.Refresh(ctx, refreshToken)
	if err != nil {
		var ne *NetworkError
		if errors.As(err, &ne) {
			return "", err
		}
		return "", c.expire(ctx, err)
	}

	values := map[string]string{session.KeyAccess: res.Access}
	if res.Refresh != "" {
		values[session.KeyRefresh] = res.Refresh
	}
	if err := c.store.SetMany(ctx, values); err != nil {
		return "", fmt.Errorf("store refreshed token: %w", err)
	}

	c.log.Info(ctx, "access token refreshed", "rotated", res.Refresh != "")
	return res.Access, nil
}

func (c *HTTPClient) expire(ctx context.Context, cause error) error {
	c.log.Warn(ctx, "session expired", "cause", cause)
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "clear session", "error", err)
	}
	if c.onExpired != nil {
		c.onExpired(ctx)
	}
	return ErrSessionExpired
}

// Refresh calls the refresh endpoint directly. It does not touch the session.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResult, error) {
	resp, err := c.callPublic(ctx, http.MethodPost, refreshPath, map[string]string{"refresh": refreshToken})
	if err != nil {
		return nil, err
	}
	var res models.RefreshResult
	if err := decode(resp, &res); err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	return &res, nil
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return b, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// decode closes resp.Body. Non-2xx answers become *RequestError; v may be nil
// when the body is not needed.
func decode(resp *http.Response, v any) error {
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return requestError(resp)
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return nil
}

func requestError(resp *http.Response) *RequestError {
	re := &RequestError{Status: resp.StatusCode}

	var body map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		for _, k := range []string{"error", "message", "detail"} {
			if s, ok := body[k].(string); ok && s != "" {
				re.Message = s
				break
			}
		}
	}
	if re.Message == "" {
		re.Message = http.StatusText(resp.StatusCode)
		if re.Message == "" {
			re.Message = "request failed"
		}
	}
	return re
}
