package unit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-suite/admin-dashboard/internal/middleware"
)

func guardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RouteGuard("jwt_token"))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/login", ok)
	r.GET("/dashboard", ok)
	r.GET("/dashboard/projects", ok)
	return r
}

func TestRouteGuard_ProtectedWithoutCookie(t *testing.T) {
	router := guardRouter()

	req := httptest.NewRequest("GET", "/dashboard/projects", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestRouteGuard_LoginWithCookie(t *testing.T) {
	router := guardRouter()

	req := httptest.NewRequest("GET", "/login", nil)
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: "tok"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestRouteGuard_RootUnaffected(t *testing.T) {
	router := guardRouter()

	// with and without a cookie, "/" passes through
	for _, withCookie := range []bool{false, true} {
		req := httptest.NewRequest("GET", "/", nil)
		if withCookie {
			req.AddCookie(&http.Cookie{Name: "jwt_token", Value: "tok"})
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("withCookie=%v: expected 200, got %d", withCookie, rr.Code)
		}
	}
}

func TestRouteGuard_ProtectedWithCookie(t *testing.T) {
	router := guardRouter()

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: "tok"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestRouteGuard_LoginWithoutCookie(t *testing.T) {
	router := guardRouter()

	req := httptest.NewRequest("GET", "/login", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}
