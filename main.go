package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrinata/go-catalog/app/cmd"
	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/routes"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadENV

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ DB connection failed")
	}

	router := routes.NewRouter(db, env)

	server := &http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("🚀 Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("✅ Server stopped")
}
