package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joshhsoj1902/achievement-hunter/internal/achievements"
	"github.com/joshhsoj1902/achievement-hunter/internal/api"
	"github.com/joshhsoj1902/achievement-hunter/internal/cli"
	"github.com/joshhsoj1902/achievement-hunter/internal/config"
	"github.com/joshhsoj1902/achievement-hunter/internal/logger"
	"github.com/joshhsoj1902/achievement-hunter/internal/prompt"
	"github.com/joshhsoj1902/achievement-hunter/internal/render"
	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger.SetVerbose(opts.Verbose)

	if opts.Command == cli.CommandInit {
		return initConfig(opts, stdout)
	}

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialise settings: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"base_url":      settings.Steam.BaseURL,
		"timeout":       settings.Steam.Timeout,
		"steam_id":      settings.Steam.UserID,
		"steam_key_set": settings.Steam.APIKey != "",
	}).Debug("Configuration loaded")

	client := steam.NewClient(
		settings.Steam.APIKey,
		steam.WithBaseURL(settings.Steam.BaseURL),
		steam.WithTimeout(settings.Steam.Timeout),
	)
	service := achievements.NewService(client, settings.Steam.UserID)

	switch opts.Command {
	case cli.CommandGetAchievements:
		err = getAchievements(ctx, service, opts, stdin, stdout, stderr)
	case cli.CommandServe:
		err = serve(ctx, service, opts)
	default:
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("invalid command chosen: %q", opts.Command)}
	}

	if opts.MetricsFile != "" {
		if werr := api.WriteMetricsFile(opts.MetricsFile); werr != nil {
			logger.Log.WithError(werr).WithField("path", opts.MetricsFile).Error("Failed to write metrics file")
			err = errors.Join(err, fmt.Errorf("failed to write metrics file: %w", werr))
		}
	}
	return err
}

func getAchievements(ctx context.Context, service *achievements.Service, opts *cli.Options, stdin io.Reader, stdout, stderr io.Writer) error {
	var chooser achievements.Chooser = prompt.NewFuzzy(stdin, stderr)
	if opts.Game != "" {
		chooser = prompt.NewClosest(opts.Game)
	}

	game, merged, err := service.Run(ctx, chooser)
	if err != nil {
		return fmt.Errorf("failed to get achievements: %w", err)
	}

	fmt.Fprintln(stdout, game.Name)
	fmt.Fprintln(stdout, render.Table(merged))
	return nil
}

func serve(ctx context.Context, service *achievements.Service, opts *cli.Options) error {
	addr := opts.Addr
	router := api.NewRouter(api.NewHandlers(service), opts.CORSOrigins...)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("addr", addr).Warn("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Warn("Shutting down server...")

	// Shutdown HTTP server with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Warn("Server exited")
	return nil
}

func initConfig(opts *cli.Options, stdout io.Writer) error {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	settings := &config.Settings{Steam: config.Steam{APIKey: opts.APIKey, UserID: opts.UserID}}
	if err := config.Save(path, settings); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(stdout, "Wrote config to %s\n", path)
	return nil
}
