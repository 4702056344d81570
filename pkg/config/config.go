package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is intentionally empty: every variable carries the full
// CARDAPIO_ prefix in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Sheets  SheetsConfig
	Cart    CartConfig
	Leads   LeadsConfig
	Webhook WebhookConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Sheets.ensureURLs(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CARDAPIO_APP_ENV" default:"dev"`
	Port         string `envconfig:"CARDAPIO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CARDAPIO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CARDAPIO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SheetsConfig locates the spreadsheet CSV exports that feed the menu and
// site configuration. Explicit URLs win; otherwise export URLs are derived
// from the sheet id plus per-tab gids.
type SheetsConfig struct {
	SheetID     string `envconfig:"CARDAPIO_SHEET_ID" default:"1HSW04exyEjR9HdYQN5njz0k6Gssxb48l_7HWiPyXw6s"`
	MenuGID     string `envconfig:"CARDAPIO_SHEET_MENU_GID" default:"0"`
	ConfigGID   string `envconfig:"CARDAPIO_SHEET_CONFIG_GID" default:"1"`
	FeaturesGID string `envconfig:"CARDAPIO_SHEET_FEATURES_GID" default:"2"`

	MenuURL     string `envconfig:"CARDAPIO_SHEET_MENU_URL"`
	ConfigURL   string `envconfig:"CARDAPIO_SHEET_CONFIG_URL"`
	FeaturesURL string `envconfig:"CARDAPIO_SHEET_FEATURES_URL"`

	FetchTimeout time.Duration `envconfig:"CARDAPIO_SHEET_FETCH_TIMEOUT" default:"10s"`
	MenuTTL      time.Duration `envconfig:"CARDAPIO_MENU_CACHE_TTL" default:"30m"`
	ConfigTTL    time.Duration `envconfig:"CARDAPIO_CONFIG_CACHE_TTL" default:"1h"`
}

func (s *SheetsConfig) ensureURLs() error {
	if s.MenuURL == "" {
		s.MenuURL = s.exportURL(s.MenuGID)
	}
	if s.ConfigURL == "" {
		s.ConfigURL = s.exportURL(s.ConfigGID)
	}
	if s.FeaturesURL == "" {
		s.FeaturesURL = s.exportURL(s.FeaturesGID)
	}
	for _, raw := range []string{s.MenuURL, s.ConfigURL, s.FeaturesURL} {
		if _, err := url.Parse(raw); err != nil {
			return fmt.Errorf("invalid sheet url %q: %w", raw, err)
		}
	}
	return nil
}

func (s *SheetsConfig) exportURL(gid string) string {
	return fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&gid=%s",
		s.SheetID, gid,
	)
}

type CartConfig struct {
	CookieName string        `envconfig:"CARDAPIO_CART_COOKIE_NAME" default:"cart_session"`
	SessionTTL time.Duration `envconfig:"CARDAPIO_CART_SESSION_TTL" default:"72h"`
}

type LeadsConfig struct {
	// SheetAppendURL is the Apps Script endpoint that appends a lead row to
	// the spreadsheet. Optional; when empty only the webhook is used.
	SheetAppendURL string        `envconfig:"CARDAPIO_LEADS_SHEET_APPEND_URL"`
	Source         string        `envconfig:"CARDAPIO_LEADS_SOURCE" default:"cardapio-digital-cupom-form"`
	Timeout        time.Duration `envconfig:"CARDAPIO_LEADS_TIMEOUT" default:"10s"`
}

type WebhookConfig struct {
	URL     string        `envconfig:"CARDAPIO_WEBHOOK_URL" default:"https://primary-production-4ada.up.railway.app/webhook-test/cardapio-digital"`
	Timeout time.Duration `envconfig:"CARDAPIO_WEBHOOK_TIMEOUT" default:"10s"`
}

// RedisConfig backs the cart session store. Leaving both URL and Address
// empty disables Redis; carts then live in process memory only.
type RedisConfig struct {
	URL          string        `envconfig:"CARDAPIO_REDIS_URL"`
	Address      string        `envconfig:"CARDAPIO_REDIS_ADDR"`
	Password     string        `envconfig:"CARDAPIO_REDIS_PASSWORD"`
	DB           int           `envconfig:"CARDAPIO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CARDAPIO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CARDAPIO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CARDAPIO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CARDAPIO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CARDAPIO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
