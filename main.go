// Package main wires configuration, dependencies, and HTTP server startup.
//
// @Title Upload API
// @Version 0.1.0
// @Description Health probe and upload acknowledgment service.
// @Server http://localhost:8080 Local development
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"upload/api/internal/config"
	"upload/api/internal/server"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger, closeLog := newLogger(cfg, os.Stdout)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config, stdout io.Writer) (zerolog.Logger, func()) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = stdout
	if cfg.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC822}
	}

	closeFn := func() {}
	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     14,
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(out, file)
		closeFn = func() { _ = file.Close() }
	}

	logger := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("env", cfg.Env).
		Str("app", cfg.AppName).
		Str("instance", uuid.NewString()).
		Logger()
	return logger, closeFn
}
