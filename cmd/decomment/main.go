// Package main implements the decomment entry point.
package main

import (
	"flag"
	"log"

	"github.com/seanhalberthal/decomment/internal/cli"
	"github.com/seanhalberthal/decomment/internal/config"
	"github.com/seanhalberthal/decomment/internal/logging"
	"github.com/seanhalberthal/decomment/internal/server"
	"github.com/seanhalberthal/decomment/internal/stripper"
)

func main() {
	mcpMode := flag.Bool("mcp", false, "Run as MCP server")
	configPath := flag.String("config", "", "Path to a config file (default: .decomment.yaml or .decomment.jsonc in the working directory)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	strip := stripper.New(cfg)

	if *mcpMode {
		logger, err := logging.New(*verbose)
		if err != nil {
			log.Fatalf("Failed to initialise logger: %v", err)
		}
		defer func() { _ = logger.Sync() }()
		server.Run(strip, logger)
		return
	}

	cli.Run(strip, flag.Args())
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}
