package minfraud

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/rdpitts/minfraud/clients"
	"github.com/rdpitts/minfraud/logger"
	"github.com/rdpitts/minfraud/metrics"
)

type Option func(*Client)

// WithLogger sets the logger used for exchange events.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics sets the recorder for request counts and latency.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		c.metrics = r
	}
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(t time.Duration) Option {
	return func(c *Client) {
		c.timeout = t
	}
}

// WithTransport replaces the network layer, mostly for tests.
func WithTransport(t clients.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithHTTPClient sends requests through hc instead of the default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.transport = clients.NewHTTPTransport(hc)
	}
}

// WithTracerProvider takes the tracer for score spans from tp instead of the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}
