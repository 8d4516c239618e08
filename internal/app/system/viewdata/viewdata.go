// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/mbticards/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	// Site settings (from app config)
	SiteName   string
	FooterHTML template.HTML

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// One-shot notices carried across a redirect
	Notices []string
}

var (
	mu       sync.RWMutex
	settings = models.SiteSettings{SiteName: models.DefaultSiteName}
)

// Init sets the site settings shown on every page.
// Call this once at startup from bootstrap.
func Init(s models.SiteSettings) {
	if s.SiteName == "" {
		s.SiteName = models.DefaultSiteName
	}
	mu.Lock()
	settings = s
	mu.Unlock()
}

// Settings returns the current site settings.
func Settings() models.SiteSettings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// NewBaseVM creates a populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	s := Settings()
	return BaseVM{
		SiteName:    s.SiteName,
		FooterHTML:  s.FooterHTML,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
