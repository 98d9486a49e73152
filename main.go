package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/cartui/config"
	"github.com/qyinm/cartui/dealer"
	"github.com/qyinm/cartui/logging"
	"github.com/qyinm/cartui/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.NewFlagSet("cartui")
	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "Usage: cartui [flags]")
		fs.PrintDefaults()
		return nil
	}
	if err != nil {
		return err
	}

	logFile, err := logging.SetupFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	source := dealer.New(cfg.DealerOptions())
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.WithFields(log.Fields{
		"base_url":    cfg.BaseURL,
		"filter_mode": cfg.FilterMode.String(),
	}).Info("starting cartui")

	model := ui.NewModel(ctx, source, ui.Options{
		FilterMode: cfg.FilterMode,
		PriceMin:   cfg.PriceMin,
		PriceMax:   cfg.PriceMax,
		PriceStep:  cfg.PriceStep,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
