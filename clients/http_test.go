package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rdpitts/minfraud/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportGet(t *testing.T) {
	var got url.Values
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/app/ccv2r", r.URL.Path)
		got = r.URL.Query()
		w.Header().Set("Content-Type", "text/plain; charset=ISO-8859-1")
		_, _ = w.Write([]byte("riskScore=0.1;countryMatch=Yes"))
	}))
	defer srv.Close()

	endpoint, err := url.Parse(srv.URL + "/app/ccv2r")
	require.NoError(t, err)

	tr := NewHTTPTransport(srv.Client())
	raw, err := tr.Get(context.Background(), endpoint, types.EncodedRequest{"i": "1.2.3.4", "license_key": "k"}, time.Second)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.Equal(t, "riskScore=0.1;countryMatch=Yes", string(raw.Body))
	assert.Equal(t, "ISO-8859-1", raw.Charset)
	assert.Equal(t, "1.2.3.4", got.Get("i"))
	assert.Equal(t, "k", got.Get("license_key"))
}

func TestHTTPTransportKeepsEndpointQuery(t *testing.T) {
	var got url.Values
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte("riskScore=1"))
	}))
	defer srv.Close()

	endpoint, err := url.Parse(srv.URL + "/app/ccv2r?partner=acme")
	require.NoError(t, err)

	_, err = NewHTTPTransport(srv.Client()).Get(context.Background(), endpoint, types.EncodedRequest{"i": "1.2.3.4"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "acme", got.Get("partner"))
	assert.Equal(t, "1.2.3.4", got.Get("i"))
	assert.Equal(t, "partner=acme", endpoint.RawQuery)
}

func TestHTTPTransportRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", MaxBodySize+10)))
	}))
	defer srv.Close()

	endpoint, _ := url.Parse(srv.URL)
	raw, err := NewHTTPTransport(srv.Client()).Get(context.Background(), endpoint, types.EncodedRequest{}, 5*time.Second)
	require.Error(t, err)
	assert.Nil(t, raw)
	assert.ErrorIs(t, err, types.ErrConnection)
}

func TestHTTPTransportPassesThroughErrorStatus(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	endpoint, _ := url.Parse(srv.URL)
	raw, err := NewHTTPTransport(srv.Client()).Get(context.Background(), endpoint, types.EncodedRequest{}, 0)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, raw.StatusCode)
}

func TestHTTPTransportTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	endpoint, _ := url.Parse(srv.URL)
	start := time.Now()
	_, err := NewHTTPTransport(srv.Client()).Get(context.Background(), endpoint, types.EncodedRequest{"license_key": "secret"}, 50*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrConnection)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.NotContains(t, err.Error(), "secret")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHTTPTransportRejectsUntrustedCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("riskScore=1"))
	}))
	defer srv.Close()

	endpoint, _ := url.Parse(srv.URL)
	_, err := NewHTTPTransport(nil).Get(context.Background(), endpoint, types.EncodedRequest{}, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrConnection)
}

func TestCharsetOf(t *testing.T) {
	assert.Equal(t, "", charsetOf(""))
	assert.Equal(t, "", charsetOf("text/plain"))
	assert.Equal(t, "utf-8", charsetOf("text/plain; charset=utf-8"))
	assert.Equal(t, "", charsetOf("%%%"))
}
