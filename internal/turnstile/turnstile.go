package turnstile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
)

// Package turnstile verifies Cloudflare Turnstile tokens server-side.
// Docs: https://developers.cloudflare.com/turnstile/get-started/server-side-validation/

const verifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Result is the outcome of one token verification.
type Result struct {
	Success bool
	Error   string
}

// Verifier checks a client-supplied challenge token.
type Verifier interface {
	Verify(ctx context.Context, token string) Result
}

// Client verifies tokens against the Cloudflare siteverify endpoint.
// With an empty secret every token passes (dev-mode bypass).
type Client struct {
	secret     string
	endpoint   string
	httpClient *http.Client
	log        logger.Logger
}

// New creates a Verifier for the given server-side secret.
func New(secret string, log logger.Logger) *Client {
	return &Client{
		secret:   secret,
		endpoint: verifyURL,
		// Outbound verification calls participate in the request trace.
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		log:        log,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the secret and token to the verification endpoint. Network
// or parse failures never propagate as errors; they surface as a generic
// "verification unavailable" result.
func (c *Client) Verify(ctx context.Context, token string) Result {
	if c.secret == "" {
		c.log.Warn("no TURNSTILE_SECRET_KEY set, skipping verification", nil)
		return Result{Success: true}
	}

	// Empty token means the widget was never completed.
	if token == "" {
		return Result{Success: false, Error: "Turnstile verification required"}
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.log.WithError(err).Error("turnstile request build failed", nil)
		return Result{Success: false, Error: "Turnstile verification unavailable"}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Error("turnstile verification request failed", nil)
		return Result{Success: false, Error: "Turnstile verification unavailable"}
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.WithError(err).Error("turnstile response parse failed", nil)
		return Result{Success: false, Error: "Turnstile verification unavailable"}
	}

	if body.Success {
		return Result{Success: true}
	}

	return Result{
		Success: false,
		Error:   "Turnstile failed: " + strings.Join(body.ErrorCodes, ", "),
	}
}
