package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tierevents/config"
	"tierevents/db"
	"tierevents/handlers"
	"tierevents/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBConnectAttempts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}
	log.Info().Msg("database schema verified")

	log.Info().
		Bool("local_identity", cfg.Features.LocalIdentityEnabled).
		Bool("upgrades", cfg.Features.UpgradesEnabled).
		Dur("upgrade_delay", cfg.UpgradeDelay).
		Msg("features")

	profileStore := db.NewProfileStore(conn)
	eventStore := db.NewEventStore(conn)
	accountStore := db.NewAccountStore(conn)

	tokens := services.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	provisioner := services.NewProfileProvisioner(profileStore)
	catalog := services.NewEventCatalog(eventStore)

	h := handlers.New(handlers.Deps{
		Profiles: provisioner,
		Catalog:  catalog,
		Upgrades: services.NewMembershipService(profileStore, cfg.UpgradeDelay),
		Pages:    services.NewPageLoader(provisioner, catalog),
		Identity: services.NewIdentityService(accountStore, tokens),
		Verifier: tokens,
		Ping:     conn.PingContext,
		Features: cfg.Features,
		Session: handlers.Session{
			Cookie: cfg.SessionCookie,
			MaxAge: tokens.TTL(),
			Secure: cfg.IsProduction(),
		},
		Timeout: cfg.StoreTimeout + cfg.UpgradeDelay,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	h.Register(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
