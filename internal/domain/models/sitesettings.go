// internal/domain/models/sitesettings.go
package models

import "html/template"

// SiteSettings holds operator-configured presentation values shown on
// every page. They come from app config at startup.
type SiteSettings struct {
	SiteName   string        // Name shown in the page header
	FooterHTML template.HTML // Sanitised footer markup
}

// DefaultSiteName is used when no site name is configured.
const DefaultSiteName = "MBTI Flashcards"
