package portal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/portal"
)

func newFetcher(timeout time.Duration) *portal.Fetcher {
	return portal.NewFetcher(portal.FetcherConfig{
		Timeout:   timeout,
		UserAgent: "jobscout-test/1.0",
		Referer:   "https://www.google.com/",
	})
}

func TestFetcher_SendsClientIdentity(t *testing.T) {
	var gotUA, gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	body, err := newFetcher(5*time.Second).Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, []byte("ok"), body)
	assert.Equal(t, "jobscout-test/1.0", gotUA)
	assert.Equal(t, "https://www.google.com/", gotReferer)
}

func TestFetcher_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newFetcher(5*time.Second).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetcher_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := newFetcher(20*time.Millisecond).Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestFetcher_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFetcher(5*time.Second).Fetch(ctx, server.URL)
	assert.Error(t, err)
}
