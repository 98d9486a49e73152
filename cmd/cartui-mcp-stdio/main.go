package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/cartui/config"
	"github.com/qyinm/cartui/dealer"
	"github.com/qyinm/cartui/logging"
	"github.com/qyinm/cartui/mcpsrv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	fs := config.NewFlagSet("cartui-mcp-stdio")
	cfg, err := config.Load(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
		return
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	// stdout carries the protocol
	if err := logging.SetupStderr(cfg.LogLevel); err != nil {
		log.Fatalf("setup logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := dealer.New(cfg.DealerOptions())
	defer source.Close()

	server := mcpsrv.NewServer(source, "dev")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.WithError(err).Fatal("stdio mcp server failed")
	}
}
