// Package flash carries one-shot notices across a POST/redirect/GET using a
// signed cookie session. Notices are removed as soon as they are read, and
// the cookie has no Max-Age, so nothing outlives the browser session.
package flash

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// DefaultName is the cookie name used when none is configured.
const DefaultName = "mbticards-flash"

const noticeKey = "notice"

// Manager reads and writes flash notices. A nil *Manager is valid and
// drops every notice, which keeps handlers usable in tests.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager signing cookies with key.
//
// In production (secure=true), cookies are Secure + SameSite=Strict.
// In local dev over http://localhost, use secure=false so cookies are accepted.
func NewManager(key, name string, secure bool, logger *zap.Logger) (*Manager, error) {
	if key == "" {
		return nil, errors.New("session key is empty; provide ≥32 random chars")
	}
	if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}
	if name == "" {
		name = DefaultName
	}

	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		store.Options.SameSite = http.SameSiteStrictMode
	}

	logger.Info("flash store initialized",
		zap.Bool("secure", secure),
		zap.String("name", name))

	return &Manager{store: store, name: name, log: logger}, nil
}

// GenerateKey returns a random signing key for development use.
func GenerateKey() string {
	return fmt.Sprintf("%x", securecookie.GenerateRandomKey(32))
}

// session fetches the flash session. A cookie that fails to decode (for
// example after a key rotation) yields a fresh session.
func (m *Manager) session(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			m.log.Debug("flash cookie invalid, using fresh session", zap.Error(err))
		} else {
			m.log.Warn("flash store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}

// Add queues msg for the next page render.
func (m *Manager) Add(w http.ResponseWriter, r *http.Request, msg string) {
	if m == nil {
		return
	}
	sess := m.session(r)
	sess.AddFlash(msg, noticeKey)
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash save failed", zap.Error(err))
	}
}

// Pop returns and clears the queued notices.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) []string {
	if m == nil {
		return nil
	}
	sess := m.session(r)
	raw := sess.Flashes(noticeKey)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash save failed", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
