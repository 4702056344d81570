package controllers

import (
	"context"
	"net/http"

	"github.com/restaurantelilica/cardapio-backend/api/responses"
	"github.com/restaurantelilica/cardapio-backend/internal/siteconfig"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
)

// SiteConfigService is the slice of the config loader the controllers
// consume.
type SiteConfigService interface {
	Load(ctx context.Context) siteconfig.WithComputed
}

// SiteConfigFetch serves the restaurant identity, contact links and
// feature flags, with the computed address and WhatsApp link.
func SiteConfigFetch(configService SiteConfigService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, configService.Load(r.Context()))
	}
}
