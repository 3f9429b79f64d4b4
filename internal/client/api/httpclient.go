package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"taskvault/internal/client/models"
	"taskvault/internal/client/tokenstore"
	"taskvault/internal/logging"
)

// retryBackoff is the pause before the single automatic retry of a
// transport-level failure.
const retryBackoff = 250 * time.Millisecond

// HTTPClient implements Client over plain HTTP/JSON.
type HTTPClient struct {
	baseURL     string
	hc          *http.Client
	tokens      tokenstore.Store
	log         logging.Logger
	healthCheck bool
}

// New builds an HTTPClient for the given base URL. timeout bounds the total
// wait for each request. When healthCheck is true, Register probes /health
// first so an unreachable server surfaces as CONNECTION_ERROR instead of a
// later generic network failure.
func New(baseURL string, timeout time.Duration, healthCheck bool, tokens tokenstore.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:     baseURL,
		hc:          &http.Client{Timeout: timeout},
		tokens:      tokens,
		log:         log,
		healthCheck: healthCheck,
	}
}

// Login exchanges credentials for an access token. A 2xx response without an
// access_token field is classified as INVALID_RESPONSE_ERROR.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, newError(CodeInvalidResponse, "login response is missing access_token")
	}
	return &out, nil
}

// Register validates the payload locally, optionally probes /health, and
// creates the account. Validation failures never reach the network.
func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	if err := ValidateRegistration(data); err != nil {
		return nil, err
	}

	if c.healthCheck {
		if err := c.Health(ctx); err != nil {
			c.log.Debug(ctx, "registration health probe failed", "error", err)
			return nil, newError(CodeConnection, "Cannot reach the server. Please check your connection and try again")
		}
	}

	var out models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the account the stored bearer token belongs to.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the session remotely. The stored token is cleared in a
// deferred step so it is gone even when the remote call fails.
func (c *HTTPClient) Logout(ctx context.Context) (err error) {
	defer func() {
		if cerr := c.tokens.Clear(context.WithoutCancel(ctx)); cerr != nil {
			c.log.Warn(ctx, "clearing stored token after logout", "error", cerr)
		}
	}()

	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Health probes the liveness endpoint.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do performs one API call: JSON in/out, bearer injection, classification,
// and a single retry for transport failures. Server-issued statuses are
// deterministic and never retried.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return newError(CodeUnknown, fmt.Sprintf("encoding request body: %v", err))
		}
	}

	var resp *http.Response
	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		c.attachToken(ctx, req)

		r, err := c.hc.Do(req)
		if err != nil {
			// No response received: a transient blip is worth one retry.
			c.log.Debug(ctx, "request failed before a response was received",
				"method", method, "path", path, "error", err)
			return retry.RetryableError(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return newError(CodeNetwork, "Network error. Please check your connection and try again")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(CodeNetwork, "Network error. Please check your connection and try again")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return newError(CodeInvalidResponse, fmt.Sprintf("decoding response body: %v", err))
		}
	}
	return nil
}

// attachToken injects the stored bearer token when present. A read failure
// only means the request goes out unauthenticated; the server will respond
// accordingly.
func (c *HTTPClient) attachToken(ctx context.Context, req *http.Request) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "reading stored token", "error", err)
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// errorDetail is the error body shape used by the server ({"detail": ...}).
// detail is a string for most errors and a structured list for request
// validation, so it is captured raw and decoded best-effort.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

func errorFromResponse(status int, body []byte) *Error {
	apiErr := &Error{Code: classifyStatus(status), Status: status}

	var parsed errorDetail
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Detail) > 0 {
		var msg string
		if err := json.Unmarshal(parsed.Detail, &msg); err == nil {
			apiErr.Message = msg
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
