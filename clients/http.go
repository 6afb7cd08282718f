package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rdpitts/minfraud/types"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 1 << 20

// HTTPTransport is the net/http implementation of Transport.
type HTTPTransport struct {
	httpClient *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport wraps httpClient. A nil client gets a TLS 1.2+ client with
// certificate verification enabled.
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &HTTPTransport{httpClient: httpClient}
}

// Get sends the request and returns the raw status and body. A non-success
// status is not an error at this layer.
func (t *HTTPTransport) Get(
	ctx context.Context,
	endpoint *url.URL,
	params types.EncodedRequest,
	timeout time.Duration,
) (*RawResponse, error) {
	if endpoint == nil {
		return nil, types.NewConfigurationError("no service endpoint configured")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	u := *endpoint
	q := u.Query()
	for k, v := range params.Values() {
		q[k] = v
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, types.ConnectionError(0, err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, types.ConnectionError(0, redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, types.ConnectionError(0, redact(err))
	}
	if len(body) > MaxBodySize {
		return nil, types.ConnectionError(0, fmt.Errorf("response body exceeds %d bytes", MaxBodySize))
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		Charset:    charsetOf(resp.Header.Get("Content-Type")),
	}, nil
}

func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

// redact strips the query string, which carries the license key, from
// url.Error messages.
func redact(err error) error {
	if ue, ok := err.(*url.Error); ok {
		if u, perr := url.Parse(ue.URL); perr == nil {
			u.RawQuery = ""
			return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
		}
	}
	return err
}
