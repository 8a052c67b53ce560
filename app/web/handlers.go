package web

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Semior001/wikiviews/app/compare"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// example articles shown in the form when the page is first opened
const (
	exampleURL1 = "https://en.wikipedia.org/wiki/Python_(programming_language)"
	exampleURL2 = "https://en.wikipedia.org/wiki/Java_(programming_language)"
)

type form struct {
	URL1  string
	URL2  string
	Start string
	End   string
}

type pageData struct {
	Form   form
	Status string
	Table  compare.Table
	Chart  template.URL
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", pageData{
		Form: form{URL1: exampleURL1, URL2: exampleURL2},
	})
}

func (s *Server) analyze(c *gin.Context) {
	f := form{
		URL1:  c.PostForm("url1"),
		URL2:  c.PostForm("url2"),
		Start: c.PostForm("start"),
		End:   c.PostForm("end"),
	}

	c.HTML(http.StatusOK, "index.tmpl", s.runAnalysis(c.Request.Context(), f))
}

// runAnalysis never fails, any error or panic of the pipeline lands
// in the status line of the page.
func (s *Server) runAnalysis(ctx context.Context, f form) (page pageData) {
	page = pageData{Form: f}

	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorCtx(ctx, "panic during analysis", slog.Any("panic", r))
			page = pageData{Form: f, Status: fmt.Sprintf("Unexpected error: %v", r)}
		}
	}()

	cmp, err := s.comparer.Compare(ctx, f.URL1, f.URL2, f.Start, f.End)
	if err != nil {
		if compare.IsUserError(err) {
			page.Status = fmt.Sprintf("Error: %v", err)
			return page
		}

		s.log.ErrorCtx(ctx, "failed to compare articles", slog.Any("err", err))
		page.Status = fmt.Sprintf("Unexpected error: %v", err)
		return page
	}

	table, spec := compare.Present(cmp)

	png, err := renderChart(spec)
	if err != nil {
		s.log.ErrorCtx(ctx, "failed to render chart", slog.Any("err", err))
		page.Status = fmt.Sprintf("Unexpected error: %v", err)
		return page
	}

	page.Status = "Analysis completed successfully!"
	page.Table = table
	if len(png) > 0 {
		page.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	return page
}

func (s *Server) health(c *gin.Context) {
	stats := s.comparer.CacheStat()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cache": gin.H{
			"hits":    stats.Hits,
			"misses":  stats.Misses,
			"added":   stats.Added,
			"evicted": stats.Evicted,
		},
	})
}
