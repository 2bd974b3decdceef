// Package main - entry point for the retail price server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"retail-price/api"
	"retail-price/core/profile"
	"retail-price/internal/config"
	"retail-price/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	if cfg.Pricing.ProfileDir != "" {
		count, err := profile.NewLoader().LoadDir(cfg.Pricing.ProfileDir, profile.Default())
		if err != nil {
			logging.Error("failed to load profile directory", zap.Error(err))
			os.Exit(1)
		}
		logging.Info("loaded profile files",
			zap.String("dir", cfg.Pricing.ProfileDir),
			zap.Int("profiles", count))
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	server := api.NewServer(version, profile.Default(), cfg.Pricing.DefaultProfile)

	logging.Info("starting retail price server",
		zap.String("addr", listen),
		zap.String("version", version),
		zap.Strings("profiles", profile.Names()))

	if err := server.ListenAndServe(listen); err != nil {
		logging.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
