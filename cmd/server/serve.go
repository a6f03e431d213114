package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/codelearn-landing/internal/config"
	"github.com/jrsteele09/codelearn-landing/internal/logger"
	"github.com/jrsteele09/codelearn-landing/server"
	"github.com/jrsteele09/codelearn-landing/sessions/tabstore"
	"github.com/rs/zerolog/log"
)

type ServeCmd struct {
	ShutdownTimeout time.Duration `help:"Graceful shutdown timeout." default:"5s" env:"SHUTDOWN_TIMEOUT"`
}

func (c *ServeCmd) Run(ctx context.Context, globals *Globals) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger.Setup(globals.Debug || cfg.GetEnv() == "DEV")
	displayAppname(cfg.GetAppName())

	authConfig := server.AuthConfig(cfg)
	exchanger := server.NewProviderExchanger(ctx, authConfig, cfg.GetExchangeTimeout(), &http.Client{Timeout: cfg.GetExchangeTimeout()})

	tabs := tabstore.New(cfg.GetTabQuotaBytes())
	handler, err := server.New(cfg, tabs, exchanger)
	if err != nil {
		return err
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go tabs.Run(sweepCtx, cfg.GetTabSweepInterval(), cfg.GetTabIdleTimeout())

	srv := &http.Server{
		Addr:              cfg.GetPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("version", globals.Version).Str("env", cfg.GetEnv()).Str("provider", authConfig.ProviderDomain).Msg("Starting server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- listenAndServe(srv)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-waitForStopSignal():
	}

	return shutdown(srv, c.ShutdownTimeout)
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
