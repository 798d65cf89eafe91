package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/tracing"
)

const upstreamName = "gemini"

// Options configures a Client. Only BaseURL and Model are required; the
// rest are optional collaborators.
type Options struct {
	BaseURL string
	Model   string
	// Timeout bounds a whole call. Zero leaves the transport default.
	Timeout time.Duration
	Breaker *resilience.Breaker
	Metrics *monitoring.Metrics
	Tracer  *tracing.Tracer
	Logger  *logging.Logger
}

// Client calls the Gemini generateContent endpoint. Each call is a single
// attempt: the client never retries.
type Client struct {
	resty   *resty.Client
	model   string
	breaker *resilience.Breaker
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
	logger  *logging.Logger
}

// NewClient builds a client on the pooled transport used by
// go-retryablehttp, with retries switched off at both layers.
func NewClient(opts Options) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	restyClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "AppBlueprint/1.0").
		SetTransport(retryClient.HTTPClient.Transport)
	if opts.Timeout > 0 {
		restyClient.SetTimeout(opts.Timeout)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Client{
		resty:   restyClient,
		model:   opts.Model,
		breaker: opts.Breaker,
		metrics: opts.Metrics,
		tracer:  opts.Tracer,
		logger:  logger,
	}
}

// NewBreaker returns a breaker tuned for the Gemini API. Client-side 4xx
// answers do not count against upstream health.
func NewBreaker(onStateChange func(name string, from, to resilience.State)) *resilience.Breaker {
	return resilience.New(upstreamName, resilience.Settings{
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			return errors.As(err, &statusErr) && !statusErr.Retryable()
		},
		OnStateChange: onStateChange,
	})
}

// Model returns the configured model id.
func (c *Client) Model() string {
	return c.model
}

// BreakerState reports the breaker state, or "disabled" without one.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return c.breaker.State().String()
}

// GenerateJSON asks the model for a JSON answer and decodes it in two
// stages: the response envelope, then the JSON text inside the first
// candidate. The decoded value is returned as generic JSON.
func (c *Client) GenerateJSON(ctx context.Context, apiKey, system, user string) (interface{}, error) {
	resp, err := c.GenerateContent(ctx, apiKey, NewJSONRequest(system, user))
	if err != nil {
		return nil, err
	}

	text, err := resp.Text()
	if err != nil {
		return nil, &DecodeError{Stage: StageEnvelope, Err: err}
	}

	var value interface{}
	if err := sonic.UnmarshalString(text, &value); err != nil {
		return nil, &DecodeError{Stage: StageContent, Err: err}
	}

	return value, nil
}

// GenerateContent performs one generateContent call and decodes the
// envelope. Failures are *TransportError, *StatusError or *DecodeError.
func (c *Client) GenerateContent(ctx context.Context, apiKey string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	var span *tracing.Span
	if c.tracer != nil {
		span, ctx = c.tracer.StartSpan(ctx, "gemini.generateContent")
		span.SetTag("gemini.model", c.model)
		defer func() {
			span.Finish()
			c.tracer.Submit(span)
		}()
	}

	timer := monitoring.NewTimer(c.metrics, upstreamName)
	resp, err := c.post(ctx, apiKey, payload)
	if resp != nil && c.metrics != nil {
		c.metrics.RecordUpstreamStatus(upstreamName, strconv.Itoa(resp.StatusCode()))
	}
	if span != nil && resp != nil {
		span.SetStatus(resp.StatusCode())
	}
	if err != nil {
		if span != nil {
			span.SetError(err)
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			timer.Stop(monitoring.OutcomeStatus)
		} else {
			timer.Stop(monitoring.OutcomeTransport)
		}
		return nil, err
	}

	var out GenerateContentResponse
	if err := sonic.Unmarshal(resp.Body(), &out); err != nil {
		timer.Stop(monitoring.OutcomeDecode)
		decodeErr := &DecodeError{Stage: StageEnvelope, Err: err}
		if span != nil {
			span.SetError(decodeErr)
		}
		return nil, decodeErr
	}

	timer.Stop(monitoring.OutcomeSuccess)
	c.logger.Debug("Gemini call completed",
		zap.String("model", c.model),
		zap.Int("candidates", len(out.Candidates)),
		zap.Duration("elapsed", resp.Time()),
	)

	return &out, nil
}

// post sends the request, through the breaker when one is configured.
func (c *Client) post(ctx context.Context, apiKey string, payload []byte) (*resty.Response, error) {
	do := func() (*resty.Response, error) {
		r := c.resty.R().
			SetContext(ctx).
			SetQueryParam("key", apiKey).
			SetBody(payload)
		tracing.InjectTraceContext(ctx, r.Header)

		resp, err := r.Post(c.endpoint())
		if err != nil {
			return nil, &TransportError{Err: err}
		}
		if !resp.IsSuccess() {
			return resp, &StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
		}
		return resp, nil
	}

	if c.breaker == nil {
		return do()
	}

	resp, err := resilience.Execute(c.breaker, do)
	if errors.Is(err, resilience.ErrCircuitOpen) || errors.Is(err, resilience.ErrTooManyRequests) {
		return nil, &TransportError{Err: err}
	}
	return resp, err
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("/v1beta/models/%s:generateContent", url.PathEscape(c.model))
}
