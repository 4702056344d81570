package controllers

import (
	"net/http"

	"github.com/restaurantelilica/cardapio-backend/api/responses"
	"github.com/restaurantelilica/cardapio-backend/pkg/config"
	pkgerrors "github.com/restaurantelilica/cardapio-backend/pkg/errors"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
	"github.com/restaurantelilica/cardapio-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cardapio-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings Redis when it is wired in. Without Redis the cart runs
// memory-only and readiness reduces to liveness.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cardapio-Env", cfg.App.Env)

		if redisPinger != nil {
			if err := redisPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
