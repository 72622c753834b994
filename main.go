package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Quanta/internal/config"
	"Quanta/internal/server"

	"github.com/spf13/cobra"
)

var (
	configFile string
	addr       string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "quanta",
		Short:        "physics calculators over the web and the command line",
		SilenceUsage: true,
		RunE:         serve,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "start the web server",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config")

	rootCmd.AddCommand(serveCmd, newListCmd(), newEvalCmd(), newSweepCmd())
	return rootCmd
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Printf("Starting server on %s", cfg.Addr)
		var err error
		if cfg.TLS() {
			err = httpServer.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Println("Shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	wg.Wait()
	logger.Println("Server stopped")
	return nil
}
