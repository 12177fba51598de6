package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sais189/travelex/internal/logger"
	"github.com/sais189/travelex/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB opens the connection pool described by cfg, binds gorm to it and
// migrates the schema. The certificate presented by the server is never
// verified: lib/pq's "require" mode encrypts without validation.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn, err := buildDSN(cfg.DatabaseURL, cfg.DBSSLMode)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.GormLogger(),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("bind gorm: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sslmode":        cfg.DBSSLMode,
		"max_open_conns": cfg.MaxOpenConns,
	}).Info("Database connection pool ready")

	DB = db
	return db, nil
}

// Migrate creates or updates the tables behind the shared schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Destination{}, &models.User{}); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}

// buildDSN turns a postgres:// URL or a key=value string into a lib/pq DSN
// whose sslmode is forced to mode.
func buildDSN(raw, mode string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty database connection string")
	}

	dsn := raw
	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		parsed, err := pq.ParseURL(raw)
		if err != nil {
			return "", fmt.Errorf("parse database url: %w", err)
		}
		dsn = parsed
	}

	// lib/pq upgrades "require" to verify-ca when a root certificate is given.
	if mode == "require" && strings.Contains(dsn, "sslrootcert") {
		return "", fmt.Errorf("sslrootcert is not supported with sslmode=require")
	}

	// lib/pq keeps the last occurrence of a key.
	return dsn + " sslmode=" + mode, nil
}
