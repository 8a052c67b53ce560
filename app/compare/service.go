// Package compare contains services for fetching and comparing
// pageview counts of Wikipedia articles.
package compare

import (
	"context"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

// Service validates user inputs, fetches pageviews of both articles
// and merges them into a single comparison.
type Service struct {
	log  *slog.Logger
	wiki *Wikimedia
	now  func() time.Time
}

// NewService creates new service.
func NewService(lg *slog.Logger, wiki *Wikimedia) *Service {
	return &Service{log: lg, wiki: wiki, now: time.Now}
}

// CacheStat returns stats of the pageviews cache.
func (s *Service) CacheStat() cache.Stats { return s.wiki.CacheStat() }

// Comparison is a result of comparing pageviews of two articles.
type Comparison struct {
	Titles [2]string
	Rows   []Row
}

// Compare extracts article titles from the given URLs, fetches pageviews
// of both articles within the given range and merges them date-by-date.
// When either of the dates is empty, the range defaults to the last 30 days.
func (s *Service) Compare(ctx context.Context, url1, url2, start, end string) (Comparison, error) {
	if start == "" || end == "" {
		now := s.now()
		start = now.AddDate(0, 0, -30).Format(dateLayout)
		end = now.Format(dateLayout)
	}

	var err error
	if start, err = ValidateDate(start); err != nil {
		return Comparison{}, err
	}
	if end, err = ValidateDate(end); err != nil {
		return Comparison{}, err
	}

	title1, err := ExtractTitle(url1)
	if err != nil {
		return Comparison{}, err
	}
	title2, err := ExtractTitle(url2)
	if err != nil {
		return Comparison{}, err
	}

	s.log.DebugCtx(ctx, "comparing pageviews",
		slog.String("title1", title1), slog.String("title2", title2),
		slog.String("start", start), slog.String("end", end))

	views1, err := s.wiki.Views(ctx, title1, start, end)
	if err != nil {
		return Comparison{}, err
	}

	views2, err := s.wiki.Views(ctx, title2, start, end)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		Titles: [2]string{title1, title2},
		Rows:   Merge(views1, views2),
	}, nil
}
