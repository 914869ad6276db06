package controllers

import (
	"context"
	"net/http"

	"github.com/sweetlayers/sweetlayers-backend/api/responses"
	"github.com/sweetlayers/sweetlayers-backend/pkg/config"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
)

const envHeader = "X-SweetLayers-Env"

// Pinger is the health check surface shared by the database and Redis
// clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, db, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]Pinger{
			"database": db,
			"redis":    redis,
		}
		for name, pinger := range checks {
			if pinger == nil {
				continue
			}
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
