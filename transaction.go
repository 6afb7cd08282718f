package minfraud

import (
	"context"
	"net/url"
	"sync"

	"github.com/rdpitts/minfraud/response"
	"github.com/rdpitts/minfraud/types"
	"github.com/rdpitts/minfraud/utils"
)

// State is the lifecycle position of a Transaction.
type State int

const (
	StateUnsent State = iota
	StateSent
)

func (s State) String() string {
	if s == StateSent {
		return "sent"
	}
	return "unsent"
}

// Transaction is one scoring request. Its attributes are fixed at
// construction; the first Score call sends it and every later call reuses
// the outcome.
type Transaction struct {
	client   *Client
	attrs    types.TransactionAttributes
	endpoint *url.URL

	mu       sync.Mutex
	state    State
	response *response.Response
	err      error
}

// Attributes returns a copy of the validated attributes.
func (t *Transaction) Attributes() types.TransactionAttributes {
	return t.attrs
}

// EncodedRequest returns the wire parameters this transaction sends.
func (t *Transaction) EncodedRequest() (types.EncodedRequest, error) {
	return utils.EncodeRequest(&t.attrs, &t.client.config)
}

// Score returns the risk score, sending the transaction on first use.
// A failed exchange is not retried: later calls return the same error.
func (t *Transaction) Score(ctx context.Context) (float64, error) {
	resp, err := t.send(ctx)
	if err != nil {
		return 0, err
	}
	return resp.RiskScore(), nil
}

// Response returns the decoded response, or nil before a successful Score.
func (t *Transaction) Response() *response.Response {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.response
}

// State reports whether the transaction has been sent.
func (t *Transaction) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Err returns the error of a failed exchange, if any.
func (t *Transaction) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Transaction) send(ctx context.Context) (*response.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateSent {
		return t.response, t.err
	}
	t.state = StateSent
	t.response, t.err = t.client.exchange(ctx, t)
	return t.response, t.err
}
