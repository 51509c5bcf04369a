package transport

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/blackroad/blackroad-go/core"
	apiErrors "github.com/blackroad/blackroad-go/errors"
	"github.com/blackroad/blackroad-go/internal/json"
	"github.com/blackroad/blackroad-go/logging"
)

// userAgent identifies this client library on every request.
const userAgent = "blackroad-go/1.0.0"

// defaultRetryAfter is the advisory wait, in seconds, attached to rate
// limit errors. The API does not send a Retry-After header; callers
// depend on this literal value.
const defaultRetryAfter = 1

// Options configures a Pipeline beyond the resolved Config.
type Options struct {
	// HTTPClient replaces the default underlying client. When set, its
	// own timeout governs each attempt and Config.Timeout is ignored.
	HTTPClient *http.Client

	// Logger receives request, retry, and classification events.
	// Defaults to a no-op logger.
	Logger logging.Logger
}

// Pipeline executes requests against the API. It implements core.Caller
// and is safe for concurrent use; per-call state lives on the stack.
type Pipeline struct {
	cfg    Config
	client *resty.Client
	logger logging.Logger

	// sleep waits out a backoff delay or returns early with the
	// context's error. Swapped in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

var _ core.Caller = (*Pipeline)(nil)

// New builds a Pipeline from an already resolved Config.
func New(cfg Config, optFns ...func(o *Options)) *Pipeline {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var client *resty.Client
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	} else {
		client = resty.New().SetTimeout(cfg.Timeout)
	}

	return &Pipeline{
		cfg:    cfg,
		client: client,
		logger: opts.Logger,
		sleep:  sleepContext,
	}
}

// Call serializes the request body once, sends the request with retry on
// transport failures, and decodes a successful response into out. A nil
// out discards the response body.
func (p *Pipeline) Call(ctx context.Context, req core.Request, out any) error {
	var body []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return apiErrors.NewSerializationError("failed to marshal request body", err)
		}
		body = b
	}

	requestID := uuid.NewString()
	url := p.buildURL(req.Path)

	p.logger.Debug("Sending API request",
		"method", req.Method,
		"path", req.Path,
		"request_id", requestID,
	)

	resp, err := p.send(ctx, req, url, body, requestID)
	if err != nil {
		return err
	}

	p.logger.Debug("Received API response",
		"method", req.Method,
		"path", req.Path,
		"request_id", requestID,
		"status", resp.StatusCode(),
	)

	return p.classify(resp, out)
}

// send runs the attempt loop. Only transport-level failures are retried;
// any received response is returned to the caller for classification.
// There is no backoff sleep after the final attempt.
func (p *Pipeline) send(ctx context.Context, req core.Request, url string, body []byte, requestID string) (*resty.Response, error) {
	var lastErr error
	for attempt := 0; attempt < p.cfg.MaxRetries; attempt++ {
		r := p.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+p.cfg.APIKey).
			SetHeader("Content-Type", "application/json").
			SetHeader("User-Agent", userAgent).
			SetHeader("X-Request-ID", requestID)
		if len(req.Query) > 0 {
			r.SetQueryParams(req.Query)
		}
		if body != nil {
			r.SetBody(body)
		}

		resp, err := r.Execute(req.Method, url)
		if err == nil {
			return resp, nil
		}

		lastErr = apiErrors.NewConnectionError("request failed", err)
		if attempt < p.cfg.MaxRetries-1 {
			delay := backoffDelay(attempt)
			p.logger.Warn("Request attempt failed, retrying",
				"method", req.Method,
				"path", req.Path,
				"request_id", requestID,
				"attempt", attempt+1,
				"backoff", delay,
				"error", err,
			)
			if serr := p.sleep(ctx, delay); serr != nil {
				return nil, apiErrors.NewConnectionError("request canceled during backoff", serr)
			}
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, apiErrors.NewConnectionError("max retries exceeded", nil)
}

// classify maps a received response onto the error taxonomy, decoding
// the body into out on success.
func (p *Pipeline) classify(resp *resty.Response, out any) error {
	body := resp.Body()

	if resp.IsSuccess() {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return apiErrors.NewSerializationError("failed to decode response body", err)
		}
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return apiErrors.NewAuthenticationError("invalid API key")
	case http.StatusNotFound:
		return apiErrors.NewNotFoundError(string(body))
	case http.StatusUnprocessableEntity:
		return apiErrors.NewValidationError(string(body))
	case http.StatusTooManyRequests:
		return apiErrors.NewRateLimitError(defaultRetryAfter)
	default:
		return apiErrors.NewAPIError(resp.StatusCode(), string(body))
	}
}

// buildURL joins the configured base with a request path. BaseURL carries
// no trailing slash after ResolveConfig, so a single separator suffices.
func (p *Pipeline) buildURL(path string) string {
	return p.cfg.BaseURL + "/" + strings.TrimPrefix(path, "/")
}

// backoffDelay returns the wait before retrying after the given
// zero-based attempt: 1s, 2s, 4s, doubling per attempt.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// sleepContext blocks for d unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
