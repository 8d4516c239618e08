// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging and timeouts; AppConfig carries what the flashcard
// deck itself needs.
type AppConfig struct {
	// Presentation
	SiteName      string // Title shown in the page header
	DefaultFilter string // Filter applied when a request carries no filter parameter
	FooterHTML    string // Operator-supplied footer markup (sanitised before use)

	// Observability
	EnableMetrics bool // Mount the Prometheus /metrics endpoint

	// Flash notice cookies
	SessionKey  string // Secret key for signing flash cookies (must be strong in production)
	SessionName string // Cookie name for flash notices (default: mbticards-flash)
}
