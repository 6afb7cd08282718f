// Package metrics records the outcome and latency of minFraud exchanges.
package metrics

import "time"

// Outcome labels for IncRequest.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidRequest  = "invalid_request"
	OutcomeWarning         = "warning"
	OutcomeServiceError    = "service_error"
	OutcomeConnectionError = "connection_error"
	OutcomeDecodeError     = "decode_error"
)

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
