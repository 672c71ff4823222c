package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Render project pages from a JSON content document",
	Long: `Folio turns a JSON content document into project pages. Each page is a
list of typed content nodes (titles, paragraphs, code, lists, images and
links) rendered into HTML, either as a static site or from a local
development server that reloads the document on every request.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
