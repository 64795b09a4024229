package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-suite/admin-dashboard/internal/dashboard"
	"github.com/portfolio-suite/admin-dashboard/internal/logging"
	"github.com/portfolio-suite/admin-dashboard/internal/monitor"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
)

type overviewView struct {
	pageData
	Stats     dashboard.Stats
	LoadError string
}

func (h *Handler) overview(c *gin.Context) {
	token, ok := h.sessionToken(c)
	if !ok {
		return
	}

	view := overviewView{pageData: h.base(c, "Dashboard Overview")}

	resp, err := h.client.GetProjects(c.Request.Context(), token, portfolio.ListOptions{})
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("overview_stats", err)
		view.LoadError = "Failed to fetch stats"
		view.Stats = dashboard.Summarize(nil)
	} else {
		view.Stats = dashboard.Summarize(resp.Items())
	}

	c.HTML(http.StatusOK, "overview", view)
}

type settingsView struct {
	pageData
	BaseURL      string
	HealthResult string
	HealthError  string
	LastCheck    monitor.Check
	HasMonitor   bool
}

func (h *Handler) settings(c *gin.Context) {
	if _, ok := h.sessionToken(c); !ok {
		return
	}
	c.HTML(http.StatusOK, "settings", h.settingsView(c))
}

// healthCheck is the manual "Test API Connection" action.
func (h *Handler) healthCheck(c *gin.Context) {
	if _, ok := h.sessionToken(c); !ok {
		return
	}

	view := h.settingsView(c)

	result, err := h.client.Health(c.Request.Context())
	if err != nil {
		view.HealthError = err.Error()
		c.HTML(http.StatusOK, "settings", view)
		return
	}

	detail, err := json.Marshal(result)
	if err != nil {
		view.HealthResult = "Backend is healthy"
	} else {
		view.HealthResult = "Backend is healthy: " + string(detail)
	}
	c.HTML(http.StatusOK, "settings", view)
}

func (h *Handler) settingsView(c *gin.Context) settingsView {
	view := settingsView{
		pageData: h.base(c, "Settings"),
		BaseURL:  h.apiBaseURL,
	}
	if h.monitor != nil {
		last := h.monitor.Last()
		if !last.At.IsZero() {
			view.LastCheck = last
			view.HasMonitor = true
		}
	}
	return view
}

// toggleTheme flips the display theme and persists it everywhere in one
// request, then returns to the page the toggle was pressed on.
func (h *Handler) toggleTheme(c *gin.Context) {
	if _, ok := h.sessionToken(c); !ok {
		return
	}

	h.manager.ToggleTheme(c.Request.Context(), c)

	back := c.GetHeader("Referer")
	if back == "" {
		back = "/dashboard"
	}
	c.Redirect(http.StatusFound, back)
}
