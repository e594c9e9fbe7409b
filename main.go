package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

const CONFIG string = `config`
const ADDR string = `addr`
const LOGLEVEL string = `logLevel`
const BUILD string = `build`

func main() {
	_ = godotenv.Load(".env")

	app := cli.NewApp()
	app.Name = "mapserver"
	app.Usage = "Serves map tile grids and place name searches"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    CONFIG,
			Aliases: []string{"c"},
			Usage:   "Path to the yaml config file",
			Value:   "./config.yaml",
			EnvVars: []string{strcase.ToScreamingSnake(CONFIG)},
		},
		&cli.StringFlag{
			Name:    ADDR,
			Aliases: []string{"a"},
			Usage:   "Listen address, overrides server.addr",
			EnvVars: []string{strcase.ToScreamingSnake(ADDR)},
		},
		&cli.StringFlag{
			Name:    LOGLEVEL,
			Aliases: []string{"l"},
			Usage:   "One of debug, info, warn, error. Overrides server.log-level",
			EnvVars: []string{strcase.ToScreamingSnake(LOGLEVEL)},
		},
		&cli.BoolFlag{
			Name:    BUILD,
			Aliases: []string{"b"},
			Usage:   "Rebuild the graph from the osm source even if a snapshot exists",
			EnvVars: []string{strcase.ToScreamingSnake(BUILD)},
		},
	}

	app.Action = func(c *cli.Context) error {
		config, err := ReadConfig(c.String(CONFIG))
		if err != nil {
			return err
		}
		if c.IsSet(ADDR) {
			config.Server.Addr = c.String(ADDR)
		}
		if c.IsSet(LOGLEVEL) {
			config.Server.LogLevel = c.String(LOGLEVEL)
		}
		if c.Bool(BUILD) {
			config.BuildGraph = true
		}
		if err := config.Validate(); err != nil {
			return err
		}

		slog.SetDefault(slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: config.Server.Level()})))

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		manager, err := NewMapManager(ctx, config)
		if err != nil {
			return err
		}
		return Serve(ctx, config.Server.Addr, NewServeMux(manager))
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Serve runs the http server until ctx is done.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdown_ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown_ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
