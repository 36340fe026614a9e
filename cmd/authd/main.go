package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"authd/internal/auth"
	"authd/internal/config"
	"authd/internal/db"
	httpx "authd/internal/http"
	"authd/internal/logger"
	"authd/internal/mail"
	"authd/internal/user"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	store := &user.GormStore{DB: gdb}
	tokens := auth.NewResetTokens(cfg.JWTSecret)
	mailer := &mail.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.EmailUser,
		Password: cfg.EmailPassword,
	}

	r := httpx.NewRouter(cfg, store, tokens, mailer)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
