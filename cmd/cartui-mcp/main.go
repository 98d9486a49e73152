package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/qyinm/cartui/config"
	"github.com/qyinm/cartui/dealer"
	"github.com/qyinm/cartui/logging"
	"github.com/qyinm/cartui/mcpsrv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func main() {
	fs := config.NewFlagSet("cartui-mcp")
	appCfg, err := config.Load(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fs.PrintDefaults()
		return
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logging.SetupStderr(appCfg.LogLevel); err != nil {
		log.Fatalf("setup logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := mcpsrv.LoadConfig()
	source := dealer.New(appCfg.DealerOptions())
	defer source.Close()

	server := mcpsrv.NewServer(source, "dev")

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           mcpsrv.NewMux(server, cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{
			"addr":     httpServer.Addr,
			"upstream": appCfg.BaseURL,
		}).Info("cartui-mcp listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server failed")
	}
	log.Info("cartui-mcp stopped")
}
