package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/export"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/surface"
)

var renderCmd = &cobra.Command{
	Use:   "render [page-id]",
	Short: "Render one page to stdout",
	Long: `Renders a single page through the page router and prints its content
HTML, or Markdown with --markdown. Without an id the default page is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("markdown", false, "print Markdown instead of HTML")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	s := surface.NewMain()
	renderErr := a.router.Render(cmd.Context(), id, s)

	out := cmd.OutOrStdout()
	if md, _ := cmd.Flags().GetBool("markdown"); md {
		text, err := export.Markdown(s.Root())
		if err != nil {
			return err
		}
		fmt.Fprint(out, text)
	} else {
		if err := s.Render(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	// The placeholder has been printed; report the outcome as well.
	if errors.Is(renderErr, pages.ErrPageNotFound) || errors.Is(renderErr, pages.ErrPageDataMissing) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", a.router.Resolve(id), renderErr)
		return nil
	}
	return renderErr
}
