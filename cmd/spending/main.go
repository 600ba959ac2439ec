package main

import (
	"os"

	"spending/internal/cli"
	"spending/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		logger := cli.SetupLogger("info")
		logger.Error("Configuration validation failed", log.FieldError, err)
		return 1
	}
	logger := cli.SetupLogger(cfg.LogLevel)

	ctx, stop := cli.SignalContext()
	defer stop()

	if err := cli.NewApp(cfg, logger).Execute(ctx, os.Args[1:], nil); err != nil {
		return 1
	}
	return 0
}
