package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-suite/admin-dashboard/config"
	"github.com/portfolio-suite/admin-dashboard/internal/bootstrap"
	"github.com/portfolio-suite/admin-dashboard/internal/monitor"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
	"github.com/portfolio-suite/admin-dashboard/internal/session"
	"github.com/portfolio-suite/admin-dashboard/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := portfolio.NewClient(cfg.API.BaseURL)

	var store session.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = session.NewRedisStore(rdb, cfg.Session.TokenKey, cfg.Session.ThemeKey, cfg.Session.TTL)
		log.Printf("session store: redis (%s)", cfg.Redis.Addr)
	} else {
		store = session.NewMemoryStore(cfg.Session.TokenKey, cfg.Session.ThemeKey)
		log.Println("session store: in-memory (REDIS_ADDR not set)")
	}

	auth := state.NewAuth()
	theme := state.NewTheme()
	search := state.NewSearch()
	manager := session.NewManager(client, store, auth, theme, cfg.Session)

	mon := monitor.NewScheduler(client, cfg.Monitor.CronSpec)
	mon.Start()
	defer mon.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-admin-dashboard",
		Config:      cfg,
		Client:      client,
		Manager:     manager,
		Auth:        auth,
		Theme:       theme,
		Search:      search,
		Monitor:     mon,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
