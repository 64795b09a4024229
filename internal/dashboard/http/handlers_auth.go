package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-suite/admin-dashboard/internal/dashboard"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
	"github.com/portfolio-suite/admin-dashboard/internal/session"
)

type loginView struct {
	pageData
	Email string
	Error string
}

// root redirects to the login page. The route guard never touches "/"; an
// already-authenticated user gets bounced onward by the guard at /login.
func (h *Handler) root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", loginView{pageData: h.base(c, "Admin Dashboard")})
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	err := h.manager.Login(c.Request.Context(), c, email, password)
	if err == nil {
		dashboard.SetFlash(c, dashboard.Flash{
			Title:       "Login successful",
			Description: "Redirecting to dashboard...",
		})
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	msg := "Invalid credentials"
	if errors.Is(err, session.ErrNoToken) {
		msg = "No token received"
	} else if apiErr, ok := portfolio.AsAPIError(err); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}

	c.HTML(http.StatusUnauthorized, "login", loginView{
		pageData: h.base(c, "Admin Dashboard"),
		Email:    email,
		Error:    msg,
	})
}

func (h *Handler) logout(c *gin.Context) {
	h.manager.Logout(c.Request.Context(), c)
	dashboard.SetFlash(c, dashboard.Flash{Title: "Logged out successfully"})
	c.Redirect(http.StatusFound, "/login")
}
