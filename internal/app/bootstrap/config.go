// internal/app/bootstrap/config.go
package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/dalemusser/mbticards/internal/app/system/flash"
	"github.com/dalemusser/mbticards/internal/app/system/typefilter"
	"github.com/dalemusser/mbticards/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// minSessionKeyLen is the shortest signing key accepted outside dev.
const minSessionKeyLen = 32

// appConfigKeys defines the configuration keys for the deck.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, default_filter, etc.
//   - Environment variables: MBTICARDS_SITE_NAME, MBTICARDS_DEFAULT_FILTER, etc.
//   - Command-line flags: --site_name, --default_filter, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Title shown in the page header"},
	{Name: "default_filter", Default: "", Desc: "Filter applied when the request has none (e.g. IN or INFJ,EST)"},
	{Name: "footer_html", Default: "", Desc: "Footer HTML (sanitised)"},
	{Name: "enable_metrics", Default: true, Desc: "Serve Prometheus metrics on /metrics"},
	{Name: "session_key", Default: "", Desc: "Flash cookie signing key (generated in dev when blank)"},
	{Name: "session_name", Default: flash.DefaultName, Desc: "Flash cookie name"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// MBTICARDS_* environment variables and flags with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MBTICARDS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:      appValues.String("site_name"),
		DefaultFilter: appValues.String("default_filter"),
		FooterHTML:    appValues.String("footer_html"),
		EnableMetrics: appValues.Bool("enable_metrics"),
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
	}

	if appCfg.SessionKey == "" && coreCfg.Env == "dev" {
		appCfg.SessionKey = flash.GenerateKey()
		logger.Info("generated ephemeral flash session key for dev")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The session key must be present and long enough outside dev, and the
// default filter must already be in canonical form so operators notice
// typos at startup rather than in the rendered deck.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	return validateAppConfig(coreCfg.Env, appCfg, logger)
}

func validateAppConfig(env string, appCfg AppConfig, logger *zap.Logger) error {
	if env != "dev" && len(appCfg.SessionKey) < minSessionKeyLen {
		logger.Error("session_key too short", zap.Int("length", len(appCfg.SessionKey)))
		return errors.Newf("session_key must be at least %d characters in %s", minSessionKeyLen, env)
	}

	if appCfg.SessionName == "" {
		return errors.New("session_name must not be empty")
	}

	if canon := typefilter.Normalize(appCfg.DefaultFilter); typefilter.Adjusted(appCfg.DefaultFilter) {
		logger.Error("default_filter is not canonical",
			zap.String("default_filter", appCfg.DefaultFilter),
			zap.String("canonical", canon))
		return errors.Newf("default_filter %q is not canonical (did you mean %q?)", appCfg.DefaultFilter, canon)
	}

	return nil
}
