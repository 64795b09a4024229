package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/portfolio-suite/admin-dashboard/config"
	apihttp "github.com/portfolio-suite/admin-dashboard/internal/api/http"
	dashhttp "github.com/portfolio-suite/admin-dashboard/internal/dashboard/http"
	"github.com/portfolio-suite/admin-dashboard/internal/middleware"
	"github.com/portfolio-suite/admin-dashboard/internal/monitor"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
	"github.com/portfolio-suite/admin-dashboard/internal/session"
	"github.com/portfolio-suite/admin-dashboard/internal/state"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Client      *portfolio.Client
	Manager     *session.Manager
	Auth        *state.Auth
	Theme       *state.Theme
	Search      *state.Search
	Monitor     *monitor.Scheduler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(dashhttp.LoadTemplates())

	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	r.Use(middleware.RouteGuard(dep.Config.Session.TokenKey))

	healthHandler := apihttp.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Client)
	healthHandler.RegisterRoutes(r)

	pages := dashhttp.New(dashhttp.Deps{
		Client:     dep.Client,
		Manager:    dep.Manager,
		Auth:       dep.Auth,
		Theme:      dep.Theme,
		Search:     dep.Search,
		Monitor:    dep.Monitor,
		APIBaseURL: dep.Config.API.BaseURL,
		Version:    dep.Config.App.Version,
	})
	pages.Register(r, middleware.LoginRateLimit(rate.Limit(1), 5))

	return r
}
