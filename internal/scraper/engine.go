package scraper

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Aziroshin/scraper/internal/fetcher"
)

// Engine runs a batch of country pipelines. Pipelines share no mutable
// state; the fetcher and store are both safe for concurrent use.
type Engine struct {
	fetcher fetcher.Fetcher
	store   Store
	reg     *Registry
	limit   int
}

// RunOpts configures which scrapers run and where they write.
type RunOpts struct {
	Sources    []string // restrict to specific scraper names; empty means all
	TestSuffix string   // appended to every storage key, isolates test runs
}

// Summary counts the outcome of a batch run.
type Summary struct {
	Written int
	Failed  int
}

// NewEngine creates an engine. limit caps concurrently running pipelines;
// zero or negative means a default of 4.
func NewEngine(f fetcher.Fetcher, store Store, reg *Registry, limit int) *Engine {
	if limit <= 0 {
		limit = 4
	}
	return &Engine{fetcher: f, store: store, reg: reg, limit: limit}
}

// Run scrapes the selected countries in parallel and writes each assembled
// record. One country's failure is logged and counted, never allowed to stop
// the others, and a failed country's prior stored record stays untouched.
func (e *Engine) Run(ctx context.Context, opts RunOpts) (*Summary, error) {
	log := zap.L().With(
		zap.String("component", "scraper.engine"),
		zap.String("run_id", uuid.NewString()),
	)

	scrapers, err := e.reg.Select(opts.Sources)
	if err != nil {
		return nil, err
	}
	if len(scrapers) == 0 {
		log.Info("no scrapers selected")
		return &Summary{}, nil
	}

	log.Info("starting batch", zap.Int("count", len(scrapers)))

	var written, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for _, s := range scrapers {
		s := s
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			sLog := log.With(zap.String("country", s.Name()))
			sLog.Info("scraping")

			start := time.Now()
			rec, err := s.Scrape(gctx, e.fetcher)
			if err != nil {
				sLog.Error("scrape failed",
					zap.Error(err),
					zap.Bool("transport", fetcher.IsTransport(err)),
					zap.Bool("parse", IsParse(err)),
					zap.Duration("elapsed", time.Since(start)),
				)
				failed.Add(1)
				return nil // don't abort other countries on individual failure
			}

			if err := e.store.Write(gctx, rec, opts.TestSuffix); err != nil {
				sLog.Error("write failed", zap.Error(err))
				failed.Add(1)
				return nil
			}

			sLog.Info("scrape complete",
				zap.Int("general", len(rec.General)),
				zap.Int("reception", len(rec.Reception)),
				zap.Duration("elapsed", time.Since(start)),
			)
			written.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "engine: batch")
	}

	summary := &Summary{
		Written: int(written.Load()),
		Failed:  int(failed.Load()),
	}
	log.Info("batch complete",
		zap.Int("written", summary.Written),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}
