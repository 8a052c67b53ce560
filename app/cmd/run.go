// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semior001/wikiviews/app/compare"
	"github.com/Semior001/wikiviews/app/web"
	"github.com/Semior001/wikiviews/pkg/logx"
	"github.com/gin-gonic/gin"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Run is a command to run the web server.
type Run struct {
	Listen string `long:"listen" env:"LISTEN" default:":8080" description:"address to listen for http requests"`

	Wikipedia struct {
		BaseURL   string        `long:"base-url" env:"BASE_URL" default:"https://wikimedia.org/api/rest_v1" description:"base URL of the pageviews API"`
		UserAgent string        `long:"user-agent" env:"USER_AGENT" default:"wikiviews/1.0 (+https://github.com/Semior001/wikiviews)" description:"user agent for pageviews API requests"`
		Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"timeout for pageviews API requests"`
	} `group:"wikipedia" namespace:"wikipedia" env-namespace:"WIKIPEDIA"`

	Cache struct {
		MaxKeys int           `long:"max-keys" env:"MAX_KEYS" default:"100" description:"max number of cached pageview series"`
		TTL     time.Duration `long:"ttl" env:"TTL" default:"0" description:"ttl of cached pageview series, 0 means never expire"`
	} `group:"cache" namespace:"cache" env-namespace:"CACHE"`
}

// Execute runs the command.
func (r Run) Execute(_ []string) error {
	lg := slog.Default()
	gin.SetMode(gin.ReleaseMode)

	rq := requester.New(http.Client{Timeout: r.Wikipedia.Timeout},
		middleware.Header("User-Agent", r.Wikipedia.UserAgent),
		logx.LoggingRoundTripper(
			lg.With(slog.String("prefix", "wikimedia")),
			logx.RoundTripperOpts{Level: slog.LevelDebug},
		),
	)

	wiki := compare.NewWikimedia(
		lg.With(slog.String("prefix", "wikimedia")),
		rq.Client(),
		r.Wikipedia.BaseURL,
		r.Cache.MaxKeys,
		r.Cache.TTL,
	)

	svc := compare.NewService(lg.With(slog.String("prefix", "compare")), wiki)
	srv := web.NewServer(lg.With(slog.String("prefix", "web")), svc, r.Listen)

	ctx, stop := context.WithCancel(context.Background())

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-sig:
			slog.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		lg.Info("starting server", slog.String("addr", r.Listen))
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		lg.Warn("server stopped")
		return nil
	})

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
