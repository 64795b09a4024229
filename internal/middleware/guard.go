package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	loginPath       = "/login"
	protectedPrefix = "/dashboard"
)

// RouteGuard gates access before any page handler runs, based solely on the
// presence of the session cookie. It is the only server-side authority on
// access; in-handler token checks are advisory UX. Rules:
//   - a protected path without the cookie redirects to /login
//   - the login path with the cookie redirects to /dashboard
//   - every other path passes through untouched
func RouteGuard(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		token, err := c.Cookie(cookieName)
		hasToken := err == nil && token != ""

		if strings.HasPrefix(path, protectedPrefix) && !hasToken {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if path == loginPath && hasToken {
			c.Redirect(http.StatusFound, protectedPrefix)
			c.Abort()
			return
		}

		c.Next()
	}
}
