package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeeshop/internal/environment"
	"coffeeshop/internal/logging"
	"coffeeshop/internal/metrics"
	"coffeeshop/internal/web"
)

const defaultAddr = ":8090"

func main() {
	if err := run(os.Args[1:], serveHTTP); err != nil {
		fatalf("envserver: %v", err)
	}
}

var serveHTTP = func(srv *http.Server) error { return srv.ListenAndServe() }
var fatalf = func(format string, args ...any) {
	slog.Error("fatal", "error", fmt.Sprintf(format, args...))
	os.Exit(1)
}
var initLogging = logging.Init

func run(args []string, serve func(*http.Server) error) error {
	fs := flag.NewFlagSet("envserver", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to environment JSON")
	envName := fs.String("env", "", "built-in environment name")
	addr := fs.String("addr", defaultAddr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	env, source, err := environment.Resolve(*configPath, *envName)
	metrics.ObserveLoad(source, err)
	if err != nil {
		return err
	}
	initLogging("envserver", nil, env.Production())
	metrics.SetEnvironment(env.Name(), env.Production())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	srv := web.NewServer(env)
	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- serve(httpSrv)
	}()

	slog.Info("envserver listening",
		"addr", *addr,
		"environment", env.Name(),
		"source", source,
		"production", env.Production(),
		"api_server_url", env.APIServerURL(),
	)
	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
