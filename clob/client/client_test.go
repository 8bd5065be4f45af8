package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betbot/polyapis/clob/signing"
)

const testKey = "0123456789012345678901234567890123456789012345678901234567890123"

func newTestSigner(t *testing.T) *signing.Signer {
	t.Helper()
	s, err := signing.NewSigner(testKey, 137)
	require.NoError(t, err)
	return s
}

func TestServerTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, EndpointTime, r.URL.Path)
		w.Write([]byte("1700000000"))
	}))
	defer srv.Close()

	c := NewClobClient(srv.URL, nil, nil, nil)
	ts, err := c.ServerTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), ts)
}

func TestDeriveAPIKeySendsL1Headers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, EndpointDeriveAPIKey, r.URL.Path)
		require.NotEmpty(t, r.Header.Get("POLY_ADDRESS"))
		require.NotEmpty(t, r.Header.Get("POLY_SIGNATURE"))
		require.NotEmpty(t, r.Header.Get("POLY_TIMESTAMP"))
		require.Equal(t, "7", r.Header.Get("POLY_NONCE"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"apiKey":"k","secret":"s","passphrase":"p"}`))
	}))
	defer srv.Close()

	c := NewClobClient(srv.URL, newTestSigner(t), nil, nil)
	creds, err := c.DeriveAPIKey(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "k", creds.Key)
	require.Equal(t, "s", creds.Secret)
	require.Equal(t, "p", creds.Passphrase)
}

// A wallet without an existing key answers 400 on derive; the client is
// expected to fall through to creation.
func TestCreateOrDeriveAPIKeyFallsBackOnBadRequest(t *testing.T) {
	var created bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == EndpointDeriveAPIKey && r.Method == http.MethodGet:
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"api key not found"}`))
		case r.URL.Path == EndpointCreateAPIKey && r.Method == http.MethodPost:
			created = true
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"apiKey":"new","secret":"s","passphrase":"p"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClobClient(srv.URL, newTestSigner(t), nil, nil)
	creds, err := c.CreateOrDeriveAPIKey(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "new", creds.Key)
}

func TestL1EndpointsRequireSigner(t *testing.T) {
	c := NewClobClient("http://unused", nil, nil, nil)
	_, err := c.CreateAPIKey(context.Background(), 0)
	var confErr *signing.ConfigurationError
	require.ErrorAs(t, err, &confErr)

	_, err = c.GetAPIKeys(context.Background())
	require.ErrorAs(t, err, &confErr)
}

func TestL2EndpointsRequireCreds(t *testing.T) {
	c := NewClobClient("http://unused", newTestSigner(t), nil, nil)
	err := c.DeleteAPIKey(context.Background())
	var confErr *signing.ConfigurationError
	require.ErrorAs(t, err, &confErr)
}
