// Package minfraud is a client for the MaxMind minFraud legacy scoring
// service. A Client holds the credential and transport; each Transaction
// validates its attributes up front and talks to the service at most once.
package minfraud

import (
	"context"
	"errors"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rdpitts/minfraud/clients"
	"github.com/rdpitts/minfraud/logger"
	"github.com/rdpitts/minfraud/metrics"
	"github.com/rdpitts/minfraud/response"
	"github.com/rdpitts/minfraud/types"
	"github.com/rdpitts/minfraud/utils"
)

const tracerName = "github.com/rdpitts/minfraud"

// DefaultTimeout applies when neither the config nor the transaction sets one.
const DefaultTimeout = 30 * time.Second

// Client is safe for concurrent use; its configuration is read-only.
type Client struct {
	config    types.Config
	endpoint  *url.URL
	transport clients.Transport
	logger    logger.Logger
	metrics   metrics.Recorder
	tracer    trace.Tracer
	timeout   time.Duration
}

// New creates a Client. The config must carry a license key.
func New(config *types.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := types.ResolveEndpoint(config.Region)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:   *config,
		endpoint: endpoint,
		timeout:  config.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.transport == nil {
		c.transport = clients.NewHTTPTransport(nil)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	if c.logger == nil {
		c.logger = logger.NoopLogger{}
		if config.LogLevel != "" {
			l, err := logger.NewZapLogger(config.LogLevel)
			if err != nil {
				return nil, err
			}
			c.logger = l
		}
	}
	if c.metrics == nil {
		c.metrics = metrics.NoopRecorder{}
		if config.EnableMetrics {
			rec, err := metrics.NewPrometheusRecorder(nil)
			if err != nil {
				return nil, err
			}
			c.metrics = rec
		}
	}

	return c, nil
}

// NewWithDefaults creates a Client for the default host with no logging or
// metrics.
func NewWithDefaults(licenseKey string) (*Client, error) {
	return New(&types.Config{
		LicenseKey:     licenseKey,
		DefaultTimeout: DefaultTimeout,
	})
}

// Config returns a copy of the client configuration.
func (c *Client) Config() types.Config {
	return c.config
}

// Endpoint returns the service URL transactions go to unless they name a
// region of their own.
func (c *Client) Endpoint() *url.URL {
	u := *c.endpoint
	return &u
}

// NewTransaction validates raw and returns an unsent Transaction. It fails
// without side effects if any attribute is missing or malformed.
func (c *Client) NewTransaction(raw types.RawAttributes) (*Transaction, error) {
	attrs, err := utils.ParseAttributes(raw)
	if err != nil {
		return nil, err
	}

	endpoint := c.endpoint
	if attrs.ServiceRegion != "" {
		endpoint, err = types.ResolveEndpoint(attrs.ServiceRegion)
		if err != nil {
			return nil, err
		}
	}

	return &Transaction{
		client:   c,
		attrs:    *attrs,
		endpoint: endpoint,
	}, nil
}

// exchange runs encode, transport and decode for t. It is called at most
// once per Transaction.
func (c *Client) exchange(ctx context.Context, t *Transaction) (*response.Response, error) {
	tier := t.attrs.RequestedType
	if tier == "" {
		tier = c.config.RequestedType
	}
	region := t.attrs.ServiceRegion
	if region == "" {
		region = c.config.Region
	}
	labels := map[string]string{"tier": string(tier), "region": region}

	ctx, span := c.tracer.Start(ctx, "minfraud.score", trace.WithAttributes(
		attribute.String("minfraud.tier", string(tier)),
		attribute.String("minfraud.region", region),
		attribute.String("minfraud.txn_id", t.attrs.TransactionID),
	))
	defer span.End()

	params, err := utils.EncodeRequest(&t.attrs, &c.config)
	if err != nil {
		return nil, c.fail(span, metrics.OutcomeInvalidRequest, labels, t, err)
	}

	timeout := t.attrs.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	c.logger.Debug("sending minfraud transaction", map[string]any{
		"endpoint": t.endpoint.String(),
		"txn_id":   t.attrs.TransactionID,
		"tier":     string(tier),
		"timeout":  timeout.String(),
	})

	start := time.Now()
	raw, err := c.transport.Get(ctx, t.endpoint, params, timeout)
	c.metrics.ObserveLatency("score", time.Since(start), labels)
	if err != nil {
		if !errors.Is(err, types.ErrConnection) && !errors.Is(err, types.ErrConfiguration) {
			err = types.ConnectionError(0, err)
		}
		return nil, c.fail(span, metrics.OutcomeConnectionError, labels, t, err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", raw.StatusCode))

	resp, err := response.Decode(raw.StatusCode, raw.Body, raw.Charset)
	if err != nil {
		outcome := metrics.OutcomeDecodeError
		switch {
		case errors.Is(err, types.ErrService):
			outcome = metrics.OutcomeServiceError
		case errors.Is(err, types.ErrConnection):
			outcome = metrics.OutcomeConnectionError
		}
		return nil, c.fail(span, outcome, labels, t, err)
	}

	outcome := metrics.OutcomeSuccess
	if code := resp.Warning(); code != "" {
		outcome = metrics.OutcomeWarning
		span.AddEvent("minfraud.warning", trace.WithAttributes(attribute.String("minfraud.code", code)))
		c.logger.Warn("minfraud returned a warning", map[string]any{
			"txn_id": t.attrs.TransactionID,
			"code":   code,
		})
	}
	c.metrics.IncCounter(outcome, labels)
	span.SetAttributes(attribute.Float64("minfraud.risk_score", resp.RiskScore()))

	return resp, nil
}

func (c *Client) fail(span trace.Span, outcome string, labels map[string]string, t *Transaction, err error) error {
	c.metrics.IncCounter(outcome, labels)
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	c.logger.Error("minfraud request failed", map[string]any{
		"txn_id":  t.attrs.TransactionID,
		"outcome": outcome,
		"error":   err,
	})
	return err
}

// Version information
const (
	Version         = "1.0.0"
	ProtocolVersion = "ccv2r"
)
