// Package clients implements the network side of a minFraud exchange.
package clients

import (
	"context"
	"net/url"
	"time"

	"github.com/rdpitts/minfraud/types"
)

// RawResponse is what came back over the wire, undecoded.
type RawResponse struct {
	StatusCode int
	Body       []byte
	// Charset declared by the server, empty when none was sent.
	Charset string
}

// Transport performs a single GET of endpoint with params as the query
// string. timeout bounds both connection and read; zero leaves it to ctx.
type Transport interface {
	Get(ctx context.Context, endpoint *url.URL, params types.EncodedRequest, timeout time.Duration) (*RawResponse, error)
}
