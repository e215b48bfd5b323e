// Package dashboard is the caller of the synthesis core: it generates each
// product's series once, caches it and serves window views from the cache.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"MarketAnalytic/internal/cache"
	"MarketAnalytic/internal/calculator"
	"MarketAnalytic/internal/catalog"
	"MarketAnalytic/internal/metrics"
	"MarketAnalytic/internal/model"
	"MarketAnalytic/internal/recorder"
	"MarketAnalytic/internal/synth"
)

const defaultConcurrency = 4

// View is what the dashboard displays for one product and window.
type View struct {
	Product model.Product         `json:"product"`
	Window  model.Window          `json:"window"`
	From    string                `json:"from"`
	To      string                `json:"to"`
	Stats   model.AggregateResult `json:"stats"`
	Records model.TimeSeries      `json:"records"`
}

// WarmReport counts products left with a fresh series and those skipped.
type WarmReport struct {
	Ready  int      `json:"ready"`
	Failed []string `json:"failed,omitempty"`
}

// Service wires catalog, cache, synthesizer and aggregator.
type Service struct {
	catalog     catalog.Provider
	cache       cache.SeriesCache
	recorder    recorder.Recorder
	metrics     *metrics.Metrics
	sources     SourceFactory
	now         func() time.Time
	concurrency int
	log         *slog.Logger

	flight singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithCache replaces the default in-memory series cache.
func WithCache(c cache.SeriesCache) Option { return func(s *Service) { s.cache = c } }

// WithRecorder sets the audit recorder.
func WithRecorder(r recorder.Recorder) Option { return func(s *Service) { s.recorder = r } }

// WithMetrics enables Prometheus instruments.
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

// WithSources sets how random sources are created per generation.
func WithSources(f SourceFactory) Option { return func(s *Service) { s.sources = f } }

// WithClock overrides time.Now for the reference date.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithLogger sets the base logger.
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }

// WithConcurrency bounds parallel generations during warm-up and refresh.
func WithConcurrency(n int) Option { return func(s *Service) { s.concurrency = n } }

// New creates a Service. Unset collaborators default to an in-memory cache,
// a no-op recorder and clock-seeded sources.
func New(p catalog.Provider, opts ...Option) *Service {
	s := &Service{
		catalog:     p,
		cache:       cache.NewMemory(),
		recorder:    recorder.NewNoopRecorder(),
		sources:     ClockSources(),
		now:         time.Now,
		concurrency: defaultConcurrency,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.concurrency <= 0 {
		s.concurrency = defaultConcurrency
	}
	s.log = s.log.With("component", "dashboard")
	return s
}

// Catalog returns the provider the service reads seeds from.
func (s *Service) Catalog() catalog.Provider { return s.catalog }

// Warm generates every catalog product that has no fresh cached series.
// Products with invalid seeds are logged and reported, never fatal.
func (s *Service) Warm(ctx context.Context) (WarmReport, error) {
	return s.generateAll(ctx, false)
}

// Refresh regenerates every product so each series ends at today's date.
func (s *Service) Refresh(ctx context.Context) (WarmReport, error) {
	return s.generateAll(ctx, true)
}

func (s *Service) generateAll(ctx context.Context, force bool) (WarmReport, error) {
	products, err := catalog.All(s.catalog)
	if err != nil {
		return WarmReport{}, fmt.Errorf("list catalog: %w", err)
	}

	var (
		mu     sync.Mutex
		report WarmReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, p := range products {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var err error
			if force {
				_, err = s.regenerate(gctx, p)
			} else {
				_, err = s.series(gctx, p)
			}
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				report.Ready++
			case errors.Is(err, synth.ErrInvalidSeed):
				report.Failed = append(report.Failed, p.ID)
			default:
				return fmt.Errorf("generate %s: %w", p.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	if s.metrics != nil {
		s.metrics.CachedSeries.Set(float64(report.Ready))
	}
	s.log.Info("catalog series ready", "ready", report.Ready, "failed", len(report.Failed), "forced", force)
	return report, nil
}

// Series returns the product's cached series, regenerating it when the
// catalog seed changed or the series no longer ends today.
func (s *Service) Series(ctx context.Context, productID string) (model.TimeSeries, error) {
	p, err := s.catalog.Product(productID)
	if err != nil {
		return nil, err
	}
	return s.series(ctx, p)
}

func (s *Service) series(ctx context.Context, p model.Product) (model.TimeSeries, error) {
	e, ok, err := s.cache.Get(ctx, p.ID)
	if err != nil {
		s.log.Warn("cache lookup failed, regenerating", "product", p.ID, "error", err)
		ok = false
	}
	switch {
	case ok && e.Fresh(p.Seed, s.now()):
		s.metrics.ObserveCache("hit")
		return e.Series, nil
	case ok:
		s.metrics.ObserveCache("stale")
	default:
		s.metrics.ObserveCache("miss")
	}
	return s.regenerate(ctx, p)
}

// regenerate builds a new series for p and stores it. Concurrent calls for
// the same product and seed share one generation.
func (s *Service) regenerate(ctx context.Context, p model.Product) (model.TimeSeries, error) {
	key := fmt.Sprintf("%s|%v|%v|%v", p.ID, p.Seed.BasePrice, p.Seed.Volatility, p.Seed.Trend)
	v, err, _ := s.flight.Do(key, func() (any, error) {
		return s.generate(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return v.(model.TimeSeries), nil
}

func (s *Service) generate(ctx context.Context, p model.Product) (model.TimeSeries, error) {
	now := s.now()
	start := time.Now()
	series, err := synth.Generate(p.Seed, now, s.sources(p.ID))
	took := time.Since(start)
	s.metrics.ObserveGeneration(err, took)

	evt := &recorder.GenerationEvent{
		ProductID:  p.ID,
		BasePrice:  p.Seed.BasePrice,
		Volatility: p.Seed.Volatility,
		Trend:      p.Seed.Trend,
		Duration:   took,
	}
	if err != nil {
		evt.Err = err.Error()
		s.record(evt)
		s.log.Warn("skipping product with invalid seed", "product", p.ID, "error", err)
		// A series built from the previous seed must not be served any more.
		if derr := s.cache.Delete(ctx, p.ID); derr != nil {
			s.log.Warn("cache delete failed", "product", p.ID, "error", derr)
		}
		return nil, fmt.Errorf("generate %s: %w", p.ID, err)
	}
	evt.Records = len(series)
	evt.FirstDate = series.First().Day()
	evt.LastDate = series.Last().Day()
	s.record(evt)

	if err := s.cache.Put(ctx, p.ID, cache.Entry{Seed: p.Seed, GeneratedAt: now, Series: series}); err != nil {
		s.log.Warn("cache store failed", "product", p.ID, "error", err)
	}
	s.log.Debug("series generated", "product", p.ID, "records", len(series), "took", took)
	return series, nil
}

// View returns the trailing window of a product's series with its aggregates.
func (s *Service) View(ctx context.Context, productID string, w model.Window) (*View, error) {
	if _, err := w.Days(); err != nil {
		return nil, err
	}
	p, err := s.catalog.Product(productID)
	if err != nil {
		return nil, err
	}
	series, err := s.series(ctx, p)
	if err != nil {
		return nil, err
	}

	slice, stats, err := calculator.Aggregate(series, w)
	s.metrics.ObserveAggregation(string(w), err)
	evt := &recorder.AggregationEvent{ProductID: p.ID, Window: string(w)}
	if err != nil {
		evt.Err = err.Error()
		s.record(evt)
		return nil, fmt.Errorf("aggregate %s: %w", p.ID, err)
	}
	evt.Records = len(slice)
	evt.AveragePrice = stats.AveragePrice
	evt.TotalUnitsSold = stats.TotalUnitsSold
	evt.PeakActiveSellers = stats.PeakActiveSellers
	s.record(evt)

	return &View{
		Product: p,
		Window:  w,
		From:    slice.First().Day(),
		To:      slice.Last().Day(),
		Stats:   stats,
		Records: slice,
	}, nil
}

func (s *Service) record(evt any) {
	var err error
	switch e := evt.(type) {
	case *recorder.GenerationEvent:
		err = s.recorder.RecordGeneration(e)
	case *recorder.AggregationEvent:
		err = s.recorder.RecordAggregation(e)
	}
	if err != nil {
		s.log.Error("record event failed", "error", err)
	}
}
