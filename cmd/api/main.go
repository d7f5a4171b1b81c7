package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"vacunapet/internal/config"
	"vacunapet/internal/platform/logger"
	"vacunapet/internal/router"

	pg "vacunapet/internal/adapters/storage/postgres"
)

// @title        VacunaPet API
// @version      1.0
// @description  API JSON para el registro de salud de mascotas.
// @BasePath     /api
func main() {
	cfg := config.Read()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		opened, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo conectar a la base")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.EnsureSchema(ctx, opened); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("no se pudo aplicar el esquema")
		}
		cancel()
		db = opened
		log.Info().Msg("storage: postgres")
	} else {
		log.Warn().Msg("DB_DSN vacío: storage in-memory, los datos se pierden al reiniciar")
	}

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Uploads.Dir).Msg("no se pudo crear el directorio de uploads")
	}

	r := router.NewRouter(router.Options{
		Logger:        log,
		DB:            db,
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
		SessionCookie: cfg.Session.CookieName,
		UploadDir:     cfg.Uploads.Dir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
