package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/eof2030/eof1validate/config"
	"github.com/eof2030/eof1validate/internal/api"
	"github.com/eof2030/eof1validate/internal/metrics"
	applog "github.com/eof2030/eof1validate/log"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the validator as an HTTP service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Value: ":8585", Usage: "HTTP listen address"},
			&cli.StringFlag{Name: "revision", Value: "cancun", Usage: "default EVM revision"},
			&cli.BoolFlag{Name: "metrics", Value: true, Usage: "expose /metrics"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Default()
			cfg.ListenAddr = c.String("listen")
			cfg.Revision = c.String("revision")
			cfg.Metrics = c.Bool("metrics")
			if err := cfg.Validate(); err != nil {
				return cli.Exit(fmt.Sprintf("invalid config: %v", err), 2)
			}

			logger := applog.Default().Module("serve")
			logger.Info("starting server", "listen", cfg.ListenAddr, "revision", cfg.Revision, "metrics", cfg.Metrics)

			reg := metrics.New(prometheus.NewRegistry())
			server := api.NewServer(cfg, reg)

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)

			return echo.StartConfig{
				Address: cfg.ListenAddr,
				BeforeServeFunc: func(srv *http.Server) error {
					logger.Info("listening", "addr", srv.Addr)
					return nil
				},
			}.Start(context.Background(), e)
		},
	}
}
