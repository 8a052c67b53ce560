package compare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

// DefaultBaseURL is the production prefix of the Wikimedia REST API.
const DefaultBaseURL = "https://wikimedia.org/api/rest_v1"

// Wikimedia requests daily pageview counts from the Wikimedia REST API.
// Successful responses are memoized, so repeated requests for the same
// article and range are served without hitting the remote again.
type Wikimedia struct {
	log     *slog.Logger
	cl      *http.Client
	baseURL string
	cache   cache.Cache[string, []DailyViews]
}

// NewWikimedia creates new Wikimedia pageviews client.
func NewWikimedia(lg *slog.Logger, cl *http.Client, baseURL string, maxKeys int, ttl time.Duration) *Wikimedia {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := cache.NewCache[string, []DailyViews]().
		WithLRU().
		WithMaxKeys(maxKeys)
	if ttl > 0 {
		c = c.WithTTL(ttl)
	}

	return &Wikimedia{
		log:     lg,
		cl:      cl,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		cache:   c,
	}
}

// CacheStat returns cache stats.
func (w *Wikimedia) CacheStat() cache.Stats { return w.cache.Stat() }

// Views returns per-day view counts of the article within the given range,
// in the order the API returned them.
func (w *Wikimedia) Views(ctx context.Context, title, start, end string) ([]DailyViews, error) {
	key := title + "/" + start + "/" + end
	if views, ok := w.cache.Get(key); ok {
		return views, nil
	}

	u := fmt.Sprintf("%s/metrics/pageviews/per-article/en.wikipedia.org/all-access/all-agents/%s/daily/%s/%s",
		w.baseURL, title, start, end)

	w.log.DebugCtx(ctx, "fetching pageviews", slog.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, &FetchError{Reason: "Error fetching pageviews", Cause: err}
	}

	resp, err := w.cl.Do(req)
	if err != nil {
		return nil, &FetchError{Reason: "Error fetching pageviews", Cause: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			w.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return nil, &FetchError{Reason: fmt.Sprintf("API error: bad status code: %d", resp.StatusCode)}
	}

	var body struct {
		Items []struct {
			Timestamp string `json:"timestamp"`
			Views     int    `json:"views"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &FetchError{Reason: "Error fetching pageviews", Cause: fmt.Errorf("decode response: %w", err)}
	}

	views := make([]DailyViews, 0, len(body.Items))
	for _, item := range body.Items {
		// date key is the YYYYMMDD prefix of an hourly timestamp
		date := item.Timestamp
		if len(date) > 8 {
			date = date[:8]
		}
		views = append(views, DailyViews{Date: date, Views: item.Views})
	}

	w.cache.Set(key, views, 0)
	return views, nil
}
