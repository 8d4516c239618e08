// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/mbticards/internal/app/resources"
	"github.com/dalemusser/mbticards/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mbticards/internal/app/system/viewdata"
	"github.com/dalemusser/mbticards/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization before the HTTP handler
// is built: it publishes the site settings used by every page and registers
// the shared layout templates.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	viewdata.Init(siteSettings(appCfg))
	resources.LoadSharedTemplates()

	logger.Info("deck ready",
		zap.String("site_name", appCfg.SiteName),
		zap.String("default_filter", appCfg.DefaultFilter),
		zap.Int("types", len(models.AllTypes())))
	return nil
}

func siteSettings(appCfg AppConfig) models.SiteSettings {
	name := appCfg.SiteName
	if name == "" {
		name = models.DefaultSiteName
	}
	return models.SiteSettings{
		SiteName:   name,
		FooterHTML: htmlsanitize.SanitizeToHTML(appCfg.FooterHTML),
	}
}
