package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/portfolio-suite/admin-dashboard/config"
	"github.com/portfolio-suite/admin-dashboard/internal/logging"
	"github.com/portfolio-suite/admin-dashboard/internal/state"
)

// ErrNoToken is returned when the backend accepted the credentials but the
// login payload carried no token.
var ErrNoToken = errors.New("no token received")

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// LoginClient is the slice of the backend client the manager needs.
type LoginClient interface {
	LoginToken(ctx context.Context, email, password string) (string, error)
}

// CookieWriter is satisfied by *gin.Context.
type CookieWriter interface {
	SetCookie(name, value string, maxAge int, path, domain string, secure, httpOnly bool)
}

// Manager is the single entry point for login, logout and session
// bootstrap. It updates the three token mirrors (persistent store,
// in-memory auth state, the guard's cookie) together so they can never
// drift apart through partial updates.
type Manager struct {
	client LoginClient
	store  Store
	auth   *state.Auth
	theme  *state.Theme
	cfg    config.SessionConfig

	hydrateOnce sync.Once
}

func NewManager(client LoginClient, store Store, auth *state.Auth, theme *state.Theme, cfg config.SessionConfig) *Manager {
	return &Manager{
		client: client,
		store:  store,
		auth:   auth,
		theme:  theme,
		cfg:    cfg,
	}
}

// Login exchanges credentials for a token and establishes the session in
// all three mirrors. On any failure nothing is stored.
func (m *Manager) Login(ctx context.Context, w CookieWriter, email, password string) error {
	logger := logging.NewLogger(ctx)

	m.auth.SetLoading(true)
	defer m.auth.SetLoading(false)

	token, err := m.client.LoginToken(ctx, email, password)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoToken
	}

	if err := m.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	m.auth.SetToken(token)
	w.SetCookie(m.cfg.TokenKey, token, int(m.cfg.TTL.Seconds()), "/", "", false, true)

	logger.LogInfo("login", "session established")
	return nil
}

// Logout tears the session down in all three mirrors. Store errors are
// logged but do not keep the user logged in.
func (m *Manager) Logout(ctx context.Context, w CookieWriter) {
	logger := logging.NewLogger(ctx)

	if err := m.store.ClearToken(ctx); err != nil {
		logger.LogError("logout", err)
	}
	m.auth.ClearToken()
	w.SetCookie(m.cfg.TokenKey, "", -1, "/", "", false, true)

	logger.LogInfo("logout", "session cleared")
}

// Hydrate bootstraps auth and theme state from the store. It runs its
// storage reads exactly once per process; later calls are no-ops.
func (m *Manager) Hydrate(ctx context.Context) {
	m.hydrateOnce.Do(func() {
		logger := logging.NewLogger(ctx)

		token, err := m.store.GetToken(ctx)
		if err != nil {
			logger.LogError("hydrate", err)
		}
		if token != "" {
			m.auth.SetToken(token)
		}

		stored, err := m.store.GetTheme(ctx)
		if err != nil {
			logger.LogError("hydrate", err)
		}
		// An explicit stored preference always overrides the configured
		// default.
		if stored == "" {
			stored = m.cfg.DefaultTheme
		}
		m.theme.SetTheme(stored == ThemeDark)
	})
}

// SaveTheme applies a theme change everywhere in one call: in-memory state,
// persistent store, and the theme cookie.
func (m *Manager) SaveTheme(ctx context.Context, w CookieWriter, isDark bool) {
	logger := logging.NewLogger(ctx)

	m.theme.SetTheme(isDark)

	value := ThemeLight
	if isDark {
		value = ThemeDark
	}
	if err := m.store.SetTheme(ctx, value); err != nil {
		logger.LogError("save_theme", err)
	}
	w.SetCookie(m.cfg.ThemeKey, value, 0, "/", "", false, false)
}

// ToggleTheme flips the preference and persists it. Returns the new value.
func (m *Manager) ToggleTheme(ctx context.Context, w CookieWriter) bool {
	isDark := m.theme.Toggle()

	value := ThemeLight
	if isDark {
		value = ThemeDark
	}
	if err := m.store.SetTheme(ctx, value); err != nil {
		logging.NewLogger(ctx).LogError("toggle_theme", err)
	}
	w.SetCookie(m.cfg.ThemeKey, value, 0, "/", "", false, false)
	return isDark
}

// Token returns the active session token. When the process-local mirrors
// are cold but the request still carries the guard cookie (fresh deploy,
// live browser session), the cookie value is synced back into the store and
// auth state so the mirrors converge again.
func (m *Manager) Token(ctx context.Context, cookieToken string) string {
	if t := m.auth.Token(); t != "" {
		return t
	}
	if cookieToken == "" {
		return ""
	}
	if err := m.store.SetToken(ctx, cookieToken); err != nil {
		logging.NewLogger(ctx).LogError("token_sync", err)
	}
	m.auth.SetToken(cookieToken)
	return cookieToken
}

// TokenCookieName is the cookie the route guard checks.
func (m *Manager) TokenCookieName() string { return m.cfg.TokenKey }
