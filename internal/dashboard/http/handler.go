// Package http serves the dashboard pages: login, overview, projects and
// settings, plus the form and table actions. All data comes from the remote
// backend through the portfolio client; handlers hold no state of their own.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-suite/admin-dashboard/internal/dashboard"
	"github.com/portfolio-suite/admin-dashboard/internal/monitor"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
	"github.com/portfolio-suite/admin-dashboard/internal/session"
	"github.com/portfolio-suite/admin-dashboard/internal/state"
)

type Handler struct {
	client  *portfolio.Client
	manager *session.Manager
	auth    *state.Auth
	theme   *state.Theme
	search  *state.Search
	monitor *monitor.Scheduler

	apiBaseURL string
	version    string
}

type Deps struct {
	Client     *portfolio.Client
	Manager    *session.Manager
	Auth       *state.Auth
	Theme      *state.Theme
	Search     *state.Search
	Monitor    *monitor.Scheduler
	APIBaseURL string
	Version    string
}

func New(deps Deps) *Handler {
	return &Handler{
		client:     deps.Client,
		manager:    deps.Manager,
		auth:       deps.Auth,
		theme:      deps.Theme,
		search:     deps.Search,
		monitor:    deps.Monitor,
		apiBaseURL: deps.APIBaseURL,
		version:    deps.Version,
	}
}

// Register wires the page routes. The route guard runs globally before any
// of these; loginLimit additionally throttles credential submissions.
func (h *Handler) Register(r gin.IRouter, loginLimit gin.HandlerFunc) {
	r.GET("/", h.root)
	r.GET("/login", h.loginPage)
	r.POST("/login", loginLimit, h.login)
	r.POST("/logout", h.logout)

	dash := r.Group("/dashboard")
	dash.GET("", h.overview)
	dash.GET("/projects", h.projects)
	dash.POST("/projects/form", h.projectForm)
	dash.POST("/projects/:id/delete", h.deleteProject)
	dash.GET("/settings", h.settings)
	dash.POST("/settings/health", h.healthCheck)
	dash.POST("/theme", h.toggleTheme)
}

// pageData is the shared template payload: shell chrome plus the pending
// flash message.
type pageData struct {
	Title   string
	Path    string
	IsDark  bool
	Query   string
	Flash   *dashboard.Flash
	Version string
}

func (h *Handler) base(c *gin.Context, title string) pageData {
	return pageData{
		Title:   title,
		Path:    c.Request.URL.Path,
		IsDark:  h.theme.IsDark(),
		Query:   h.search.Query(),
		Flash:   dashboard.PopFlash(c),
		Version: h.version,
	}
}

// sessionToken hydrates the session stores once per process and returns the
// active token. Empty means the mirrors and the cookie all agree there is
// no session; the caller redirects. This check is advisory UX, the route
// guard is the actual access authority.
func (h *Handler) sessionToken(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()
	h.manager.Hydrate(ctx)

	cookieToken, _ := c.Cookie(h.manager.TokenCookieName())
	token := h.manager.Token(ctx, cookieToken)
	if token == "" {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return "", false
	}
	return token, true
}
