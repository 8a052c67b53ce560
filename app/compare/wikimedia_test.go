package compare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestWikimedia_Views(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/metrics/pageviews/per-article/en.wikipedia.org/all-access/all-agents/"+
			"Go_(programming_language)/daily/20230301/20230303", r.URL.Path)
		_, err := w.Write([]byte(`{"items":[
			{"timestamp":"2023030100","views":100},
			{"timestamp":"2023030200","views":150},
			{"timestamp":"2023030300","views":125}
		]}`))
		require.NoError(t, err)
	}))
	defer ts.Close()

	wiki := NewWikimedia(slog.Default(), ts.Client(), ts.URL, 100, 0)

	views, err := wiki.Views(context.Background(), "Go_(programming_language)", "20230301", "20230303")
	require.NoError(t, err)
	assert.Equal(t, []DailyViews{
		{Date: "20230301", Views: 100},
		{Date: "20230302", Views: 150},
		{Date: "20230303", Views: 125},
	}, views)
	assert.Equal(t, 1, hits)

	// repeated request is served from cache
	views, err = wiki.Views(context.Background(), "Go_(programming_language)", "20230301", "20230303")
	require.NoError(t, err)
	assert.Len(t, views, 3)
	assert.Equal(t, 1, hits)

	stats := wiki.CacheStat()
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
}

func TestWikimedia_Views_APIError(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "no such article", http.StatusNotFound)
	}))
	defer ts.Close()

	wiki := NewWikimedia(slog.Default(), ts.Client(), ts.URL, 100, 0)

	_, err := wiki.Views(context.Background(), "Nonexistent", "20230301", "20230303")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.EqualError(t, err, "API error: bad status code: 404")

	// failures are not cached
	_, err = wiki.Views(context.Background(), "Nonexistent", "20230301", "20230303")
	require.Error(t, err)
	assert.Equal(t, 2, hits)
}

func TestWikimedia_Views_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"items":[`))
		require.NoError(t, err)
	}))
	defer ts.Close()

	wiki := NewWikimedia(slog.Default(), ts.Client(), ts.URL, 100, 0)

	_, err := wiki.Views(context.Background(), "Foo", "20230301", "20230303")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorContains(t, err, "Error fetching pageviews: decode response:")
}

func TestWikimedia_Views_RemoteDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u := ts.URL
	ts.Close()

	wiki := NewWikimedia(slog.Default(), &http.Client{}, u, 100, 0)

	_, err := wiki.Views(context.Background(), "Foo", "20230301", "20230303")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorContains(t, err, "Error fetching pageviews")
}

func TestWikimedia_Views_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	wiki := NewWikimedia(slog.Default(), &http.Client{Timeout: 20 * time.Millisecond}, ts.URL, 100, 0)

	_, err := wiki.Views(context.Background(), "Foo", "20230301", "20230303")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorContains(t, err, "Error fetching pageviews")
}

func TestWikimedia_Views_ShortTimestamp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"items":[{"timestamp":"202303","views":5}]}`))
		require.NoError(t, err)
	}))
	defer ts.Close()

	wiki := NewWikimedia(slog.Default(), ts.Client(), ts.URL, 100, 0)

	views, err := wiki.Views(context.Background(), "Foo", "20230301", "20230303")
	require.NoError(t, err)
	assert.Equal(t, []DailyViews{{Date: "202303", Views: 5}}, views)
}

func TestWikimedia_Views_Eviction(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, err := w.Write([]byte(`{"items":[{"timestamp":"2023030100","views":1}]}`))
		require.NoError(t, err)
	}))
	defer ts.Close()

	wiki := NewWikimedia(slog.Default(), ts.Client(), ts.URL, 1, 0)

	_, err := wiki.Views(context.Background(), "Foo", "20230301", "20230303")
	require.NoError(t, err)
	_, err = wiki.Views(context.Background(), "Bar", "20230301", "20230303")
	require.NoError(t, err)

	// Foo is evicted by Bar, so it has to be fetched again
	_, err = wiki.Views(context.Background(), "Foo", "20230301", "20230303")
	require.NoError(t, err)
	assert.Equal(t, 3, hits)

	stats := wiki.CacheStat()
	assert.Equal(t, 3, stats.Added)
	assert.Equal(t, 2, stats.Evicted)
}
