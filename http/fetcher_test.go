package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avolos/flatscan"
	flathttp "github.com/avolos/flatscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`<div class="offer-view-id">Код: 42</div>`))
	}))
	defer srv.Close()

	f := flathttp.NewFetcher()
	defer f.Close()

	body, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, body, "offer-view-id")
}

func TestFetch_CustomUserAgent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "flatscan-test", r.Header.Get("User-Agent"))
	}))
	defer srv.Close()

	f := flathttp.NewFetcher(flathttp.WithUserAgent("flatscan-test"))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
}

func TestFetch_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := flathttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, flatscan.EUNAVAILABLE, flatscan.ErrorCode(err))
}

func TestFetch_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := flathttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, flatscan.EUNAVAILABLE, flatscan.ErrorCode(err))
}
