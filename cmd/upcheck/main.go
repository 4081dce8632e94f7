package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/upcheck-dev/upcheck/internal/auth"
	"github.com/upcheck-dev/upcheck/internal/config"
	"github.com/upcheck-dev/upcheck/internal/core"
	"github.com/upcheck-dev/upcheck/internal/db"
	"github.com/upcheck-dev/upcheck/internal/handlers"
	"github.com/upcheck-dev/upcheck/internal/logging"
	"github.com/upcheck-dev/upcheck/internal/router"
	"github.com/upcheck-dev/upcheck/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFile)

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	users := store.NewUserStore(conn)
	workspaces := store.NewWorkspaceStore(conn)
	services := store.NewServiceStore(conn)
	endpoints := store.NewEndpointStore(conn)

	r := router.New(router.Deps{
		Tokens:     tokens,
		Auth:       handlers.NewAuthHandler(core.NewAuthCore(users, tokens), cfg.CookieDomain),
		Workspaces: handlers.NewWorkspaceHandler(core.NewWorkspaceCore(workspaces)),
		Services:   handlers.NewServiceHandler(core.NewServiceCore(services, workspaces)),
		Endpoints:  handlers.NewEndpointHandler(core.NewEndpointCore(endpoints, services, workspaces)),
	}, cfg.AllowedOrigins)

	log.Infof("Listening on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
