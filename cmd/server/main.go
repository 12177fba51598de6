package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sais189/travelex/internal/config"
	"github.com/sais189/travelex/internal/controllers"
	"github.com/sais189/travelex/internal/logger"
	"github.com/sais189/travelex/internal/middleware"
	"github.com/sais189/travelex/internal/repository"
	"github.com/sais189/travelex/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile, cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	// Connect to the database
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Database initialization failed")
	}

	destinations := repository.NewDestinationRepository(db)
	users := repository.NewUserRepository(db)

	if err := controllers.BootstrapAdmin(context.Background(), users, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("Admin bootstrap failed")
	}

	jwtAuth := middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL)
	r, err := routes.SetupRouter(routes.Dependencies{
		Destinations:   controllers.NewDestinationController(destinations),
		Auth:           controllers.NewAuthController(users, jwtAuth),
		Search:         controllers.NewSearchController(destinations, cfg.SearchBlurDelay, cfg.CORSOrigins),
		JWT:            jwtAuth,
		LoginLimiter:   routes.NewLoginLimiter(),
		TrustedProxies: cfg.TrustedProxies,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Router setup failed")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           middleware.EnableCORS(cfg.CORSOrigins, r),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", cfg.HTTPAddr).Info("Server running")
		log.Printf("Server running at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
