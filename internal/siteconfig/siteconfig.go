// Package siteconfig builds the restaurant's site configuration from
// spreadsheet CSV exports: one identity row plus a feature-flag table.
package siteconfig

import (
	"errors"
	"strings"

	"github.com/restaurantelilica/cardapio-backend/internal/csv"
)

// DefaultRestaurantName is used when the sheet has no name cell.
const DefaultRestaurantName = "Restaurante Lilica"

// ErrNoContent signals a config CSV without a header or data row; callers
// fall back to the bundled CSV.
var ErrNoContent = errors.New("config csv without content")

// SiteConfig is the restaurant identity and contact record. Every field may
// be empty except RestaurantName, which carries a default.
type SiteConfig struct {
	RestaurantName string `json:"restaurantName"`
	CNPJ           string `json:"cnpj"`
	Phone          string `json:"phone"`
	WhatsApp       string `json:"whatsapp"`
	Address        string `json:"address"`
	Neighborhood   string `json:"neighborhood"`
	City           string `json:"city"`
	State          string `json:"state"`
	Instagram      string `json:"instagram"`
	Facebook       string `json:"facebook"`
	LogoURL        string `json:"logoUrl"`

	FormularioCupom bool `json:"formularioCupom"`
}

// WithComputed is SiteConfig plus the derived presentation fields.
type WithComputed struct {
	SiteConfig
	FormattedAddress string `json:"formattedAddress"`
	WhatsAppLink     string `json:"whatsappLink"`
}

// BuildConfig maps a config CSV (header + first data row) to a SiteConfig.
// Additional data rows are ignored. Headers match by normalized key, so
// "Endereço" resolves the address column.
func BuildConfig(csvText string) (SiteConfig, error) {
	rows := csv.NonEmptyRows(csv.SplitRows(csvText))
	if len(rows) < 2 {
		return SiteConfig{}, ErrNoContent
	}

	headerFields := csv.ParseFields(csv.StripBOM(rows[0]))
	headers := make([]string, len(headerFields))
	for i, field := range headerFields {
		headers[i] = csv.NormalizeKey(field)
	}
	values := csv.ParseFields(rows[1])

	// The fallback applies only when the column is absent; a present column
	// with an empty cell means the sheet deliberately left the field blank.
	get := func(fallback string, candidates ...string) string {
		idx := csv.FindColumn(headers, candidates...)
		if idx < 0 {
			return fallback
		}
		return csv.Cell(values, idx)
	}

	return SiteConfig{
		RestaurantName: get(DefaultRestaurantName, "restaurante", "nome"),
		CNPJ:           get("", "cnpj"),
		Phone:          get("", "telefone", "phone"),
		WhatsApp:       get("", "whatsapp", "whats"),
		Address:        get("", "endereco", "endereco1"),
		Neighborhood:   get("", "bairro"),
		City:           get("", "cidade", "city"),
		State:          get("", "estado", "uf", "state"),
		Instagram:      get("", "instagram", "ig"),
		Facebook:       get("", "facebook", "fb"),
		LogoURL:        get("", "logo", "logourl", "logoimagem"),
	}, nil
}

// Enrich derives the presentation fields. FormattedAddress joins
// address+neighborhood with ", ", city/state with "/", and the two groups
// with " - ", skipping empty parts. WhatsAppLink keeps digits only and
// falls back to the bare wa.me base when none remain.
func Enrich(cfg SiteConfig) WithComputed {
	streetPart := joinNonEmpty([]string{cfg.Address, cfg.Neighborhood}, ", ")
	cityPart := joinNonEmpty([]string{cfg.City, cfg.State}, "/")
	formatted := joinNonEmpty([]string{streetPart, cityPart}, " - ")

	link := "https://wa.me/"
	if digits := DigitsOnly(cfg.WhatsApp); digits != "" {
		link += digits
	}

	return WithComputed{
		SiteConfig:       cfg,
		FormattedAddress: formatted,
		WhatsAppLink:     link,
	}
}

// DigitsOnly strips every non-digit rune from a phone number.
func DigitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func joinNonEmpty(parts []string, sep string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
