package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/watch"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long: `Renders every configured page through the page router and writes a
self-contained static site with an index, navigation, search index and the
copied static assets.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("watch", false, "rebuild when the content document, fragments or static files change")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	if outputDir, _ := cmd.Flags().GetString("output"); outputDir != "" {
		a.cfg.OutputDir = outputDir
	}

	generator := site.NewGenerator(site.Options{
		Config:      a.cfg,
		Router:      a.router,
		Highlighter: a.highlighter,
		Reporter:    progress.NewReporter(os.Stderr),
		Logger:      a.logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	build := func(ctx context.Context) error {
		res, err := generator.Generate(ctx)
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		fmt.Printf("Static site built: %s (%d pages)\n", a.cfg.OutputDir, res.Pages)
		if len(res.Missing) > 0 {
			fmt.Printf("Pages without content: %s\n", strings.Join(res.Missing, ", "))
		}
		return nil
	}

	if err := build(ctx); err != nil {
		return err
	}

	if watchMode, _ := cmd.Flags().GetBool("watch"); watchMode {
		w, err := watch.New(
			[]string{a.cfg.Content, a.cfg.Header, a.cfg.Footer, a.cfg.StaticDir},
			watch.DefaultDebounce,
			a.logger,
		)
		if err != nil {
			return err
		}
		a.logger.Info("watching for changes, press Ctrl+C to stop", zap.String("content", a.cfg.Content))
		return w.Run(ctx, build)
	}
	return nil
}
