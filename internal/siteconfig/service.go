package siteconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/restaurantelilica/cardapio-backend/internal/sheets"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
	"github.com/restaurantelilica/cardapio-backend/pkg/metrics"
)

const (
	configSource   = "config"
	featuresSource = "features"
)

// Fetcher pulls CSV text from an export URL.
type Fetcher interface {
	FetchCSV(ctx context.Context, url string) (string, error)
}

// Service loads the site configuration (identity row + feature flags)
// remote-first with bundled fallbacks, memoized for the configured
// lifetime. Load never fails.
type Service struct {
	fetcher Fetcher
	cache   *sheets.Cache[WithComputed]

	configURL   string
	featuresURL string

	fallbackConfigCSV   string
	fallbackFeaturesCSV string

	logg    *logger.Logger
	metrics *metrics.SheetLoadMetrics
}

// ServiceParams configures the site config service.
type ServiceParams struct {
	Fetcher             Fetcher
	ConfigURL           string
	FeaturesURL         string
	FallbackConfigCSV   string
	FallbackFeaturesCSV string
	TTL                 time.Duration
	Clock               func() time.Time
	Logger              *logger.Logger
	Metrics             *metrics.SheetLoadMetrics
}

// NewService builds the config loader.
func NewService(p ServiceParams) (*Service, error) {
	if p.Fetcher == nil {
		return nil, fmt.Errorf("fetcher required")
	}
	if p.ConfigURL == "" || p.FeaturesURL == "" {
		return nil, fmt.Errorf("config and features sheet urls required")
	}
	if p.FallbackConfigCSV == "" || p.FallbackFeaturesCSV == "" {
		return nil, fmt.Errorf("fallback csvs required")
	}
	if p.TTL <= 0 {
		p.TTL = time.Hour
	}
	return &Service{
		fetcher:             p.Fetcher,
		cache:               sheets.NewCache[WithComputed](p.TTL, p.Clock),
		configURL:           p.ConfigURL,
		featuresURL:         p.FeaturesURL,
		fallbackConfigCSV:   p.FallbackConfigCSV,
		fallbackFeaturesCSV: p.FallbackFeaturesCSV,
		logg:                p.Logger,
		metrics:             p.Metrics,
	}, nil
}

// Load returns the enriched site configuration, cached for the service TTL.
func (s *Service) Load(ctx context.Context) WithComputed {
	return s.cache.Get(ctx, s.load)
}

func (s *Service) load(ctx context.Context) WithComputed {
	cfg, err := s.tryRemoteConfig(ctx)
	if err != nil {
		s.logFallback(ctx, configSource, err)
		s.metrics.IncFallback(configSource)
		cfg, _ = BuildConfig(s.fallbackConfigCSV)
	} else {
		s.metrics.IncSuccess(configSource)
	}

	flags, err := s.tryRemoteFeatures(ctx)
	if err != nil {
		s.logFallback(ctx, featuresSource, err)
		s.metrics.IncFallback(featuresSource)
		flags = ParseFeatureConfig(s.fallbackFeaturesCSV)
	} else {
		s.metrics.IncSuccess(featuresSource)
	}

	cfg.FormularioCupom = flags.FormularioCupom
	return Enrich(cfg)
}

func (s *Service) tryRemoteConfig(ctx context.Context) (SiteConfig, error) {
	start := time.Now()
	csvText, err := s.fetcher.FetchCSV(ctx, s.configURL)
	s.metrics.ObserveFetchDuration(configSource, time.Since(start))
	if err != nil {
		return SiteConfig{}, err
	}
	return BuildConfig(csvText)
}

func (s *Service) tryRemoteFeatures(ctx context.Context) (FeatureFlags, error) {
	start := time.Now()
	csvText, err := s.fetcher.FetchCSV(ctx, s.featuresURL)
	s.metrics.ObserveFetchDuration(featuresSource, time.Since(start))
	if err != nil {
		return FeatureFlags{}, err
	}
	return ParseFeatureConfig(csvText), nil
}

func (s *Service) logFallback(ctx context.Context, source string, err error) {
	if s.logg == nil {
		return
	}
	lctx := s.logg.WithSheetSource(ctx, source)
	s.logg.Warn(s.logg.WithField(lctx, "error", err.Error()), "sheet.fallback")
}
