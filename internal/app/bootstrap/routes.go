// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/mbticards/internal/app/features/about"
	deckfeature "github.com/dalemusser/mbticards/internal/app/features/deck"
	errorsfeature "github.com/dalemusser/mbticards/internal/app/features/errors"
	healthfeature "github.com/dalemusser/mbticards/internal/app/features/health"
	"github.com/dalemusser/mbticards/internal/app/system/flash"
	"github.com/dalemusser/mbticards/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration and Startup have completed. It boots
// the template engine, builds the flash manager and metrics registry, and
// mounts the feature routers: health, static assets, metrics, about and the
// deck itself at the root.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	flashMgr, err := flash.NewManager(appCfg.SessionKey, appCfg.SessionName, secure, logger)
	if err != nil {
		logger.Error("flash manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(reg)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets (stylesheet and the study-mode key handler)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	if appCfg.EnableMetrics {
		r.Handle("/metrics", metrics.Handler(reg))
	}

	aboutHandler := aboutfeature.NewHandler(logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	deckHandler := deckfeature.NewHandler(appCfg.DefaultFilter, flashMgr, recorder, errLog, logger)
	r.Mount("/", deckfeature.Routes(deckHandler))

	return r, nil
}
