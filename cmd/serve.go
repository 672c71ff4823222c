package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server",
	Long: `Starts a local HTTP server that renders /project.html?page=<id> on every
request from a fresh load of the content document.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	port := a.cfg.Server.Port
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		port = p
	}

	layout, err := a.layout(pages.ProjectURL)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:      port,
		StaticDir: a.cfg.StaticDir,
		AllowAll:  a.cfg.Server.AllowAllOrigins,
	}, a.router, layout, a.highlighter, a.logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		srv.Shutdown(context.Background())
	}()

	if open, _ := cmd.Flags().GetBool("open"); open {
		go srv.OpenBrowser()
	}

	fmt.Printf("Serving %s at %s (press Ctrl+C to stop)\n", a.cfg.Title, srv.URL())
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
