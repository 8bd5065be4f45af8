package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "polyapis-go", r.Header.Get("User-Agent"))
		require.Equal(t, "42", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	c := New(srv.URL)
	err := c.Get(context.Background(), "/thing", &RequestOptions{
		Params: map[string]string{"limit": "42"},
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "ok", out.Name)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"nope"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Get(context.Background(), "/thing", nil, nil)
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusBadRequest))
	require.False(t, IsStatus(err, http.StatusNotFound))
	require.Contains(t, err.Error(), "nope")
}

func TestGetText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("1700000000\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	body, err := c.GetText(context.Background(), "/time", nil)
	require.NoError(t, err)
	require.Equal(t, "1700000000", body)
}
