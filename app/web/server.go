// Package web contains the HTTP server and the page handlers of the service.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/Semior001/wikiviews/app/compare"
	"github.com/Semior001/wikiviews/pkg/logx"
	"github.com/gin-gonic/gin"
	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

//go:embed data/index.tmpl
var indexTmpl string

//go:generate moq -out mock_comparer.go . Comparer

// Comparer runs the comparison pipeline for a pair of article URLs.
type Comparer interface {
	Compare(ctx context.Context, url1, url2, start, end string) (compare.Comparison, error)
	CacheStat() cache.Stats
}

// Server serves the comparison web UI.
type Server struct {
	log      *slog.Logger
	comparer Comparer
	srv      *http.Server
}

// NewServer creates new web server on the given address.
func NewServer(lg *slog.Logger, cmp Comparer, addr string) *Server {
	if lg == nil {
		lg = slog.New(logx.NoOp())
	}

	s := &Server{log: lg, comparer: cmp}

	r := gin.New()
	r.Use(requestID(), logger(lg), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("index.tmpl").Parse(indexTmpl)))

	r.GET("/", s.index)
	r.POST("/", s.analyze)
	r.GET("/health", s.health)
	r.GET("/favicon.ico", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}

	return s
}

// Run starts the server and blocks until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()

		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(sctx); err != nil {
			s.log.Error("failed to shutdown server", slog.Any("err", err))
		}
	}()

	s.log.Info("listening", slog.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	<-done
	return nil
}
