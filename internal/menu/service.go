package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/restaurantelilica/cardapio-backend/internal/sheets"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
	"github.com/restaurantelilica/cardapio-backend/pkg/metrics"
)

const metricSource = "menu"

// Fetcher pulls CSV text from an export URL.
type Fetcher interface {
	FetchCSV(ctx context.Context, url string) (string, error)
}

// Service loads menu data remote-first with a bundled fallback, memoized
// for the configured lifetime. Load never fails: callers always receive a
// structurally valid menu.
type Service struct {
	fetcher     Fetcher
	builder     *Builder
	cache       *sheets.Cache[Data]
	url         string
	fallbackCSV string
	logg        *logger.Logger
	metrics     *metrics.SheetLoadMetrics
}

// ServiceParams configures the menu service.
type ServiceParams struct {
	Fetcher     Fetcher
	Builder     *Builder
	URL         string
	FallbackCSV string
	TTL         time.Duration
	Clock       func() time.Time
	Logger      *logger.Logger
	Metrics     *metrics.SheetLoadMetrics
}

// NewService builds the menu loader.
func NewService(p ServiceParams) (*Service, error) {
	if p.Fetcher == nil {
		return nil, fmt.Errorf("fetcher required")
	}
	if p.URL == "" {
		return nil, fmt.Errorf("menu sheet url required")
	}
	if p.FallbackCSV == "" {
		return nil, fmt.Errorf("fallback csv required")
	}
	if p.Builder == nil {
		p.Builder = NewDefaultBuilder()
	}
	if p.TTL <= 0 {
		p.TTL = 30 * time.Minute
	}
	return &Service{
		fetcher:     p.Fetcher,
		builder:     p.Builder,
		cache:       sheets.NewCache[Data](p.TTL, p.Clock),
		url:         p.URL,
		fallbackCSV: p.FallbackCSV,
		logg:        p.Logger,
		metrics:     p.Metrics,
	}, nil
}

// Load returns the current menu, cached for the service TTL.
func (s *Service) Load(ctx context.Context) Data {
	return s.cache.Get(ctx, s.load)
}

// ItemByID resolves one item from the current (cached) menu.
func (s *Service) ItemByID(ctx context.Context, id string) (Item, bool) {
	for _, item := range s.Load(ctx).Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

func (s *Service) load(ctx context.Context) Data {
	data, err := s.tryRemote(ctx)
	if err != nil {
		if s.logg != nil {
			lctx := s.logg.WithSheetSource(ctx, metricSource)
			s.logg.Warn(s.logg.WithField(lctx, "error", err.Error()), "sheet.fallback")
		}
		s.metrics.IncFallback(metricSource)
		return s.builder.BuildData(s.fallbackCSV)
	}
	s.metrics.IncSuccess(metricSource)
	return data
}

func (s *Service) tryRemote(ctx context.Context) (Data, error) {
	start := time.Now()
	csvText, err := s.fetcher.FetchCSV(ctx, s.url)
	s.metrics.ObserveFetchDuration(metricSource, time.Since(start))
	if err != nil {
		return Data{}, err
	}

	data := s.builder.BuildData(csvText)
	if len(data.Items) == 0 {
		return Data{}, fmt.Errorf("menu csv returned no items")
	}
	return data, nil
}
