package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/springmovies/webclient/pkg/clientip"
	"github.com/springmovies/webclient/pkg/config"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/requestid"
)

func main() {
	var appCfg AppConfig
	if err := config.Load(&appCfg); err != nil {
		appCfg = DefaultAppConfig()
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithLevelName(appCfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	runner := NewRunner(RunnerOpts{Logger: log})

	cmd := &cli.Command{
		Name:     "webclient",
		Usage:    "Spring Movies web front-end",
		Action:   runner.Serve,
		Commands: runner.register(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error("application error", logger.Error(err))
		os.Exit(1)
	}
}
