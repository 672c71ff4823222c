package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/folio/internal/content"
)

// DefaultPath is where the wizard writes the configuration.
const DefaultPath = ".folio.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	// 2. Content document.
	contentPrompt := promptui.Prompt{
		Label:   "Content document (file path or http(s) URL)",
		Default: defaults.Content,
	}
	contentPath, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content document: %w", err)
	}

	// 3. Pages. Offer the ids found in a local content file.
	detected := detectPageIDs(contentPath)
	if len(detected) > 0 {
		fmt.Printf("Found %d pages in %s: %s\n\n", len(detected), contentPath, strings.Join(detected, ", "))
	}
	pagesPrompt := promptui.Prompt{
		Label:   "Pages to serve (comma-separated ids)",
		Default: strings.Join(detected, ","),
	}
	pagesStr, err := pagesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("pages: %w", err)
	}
	ids := splitAndTrim(pagesStr)

	// 4. Default page.
	defaultPage := ""
	if len(ids) > 0 {
		items := append([]string{"(none)"}, ids...)
		defaultSelect := promptui.Select{
			Label: "Page shown when no page is requested",
			Items: items,
		}
		idx, _, err := defaultSelect.Run()
		if err != nil {
			return nil, fmt.Errorf("default page: %w", err)
		}
		if idx > 0 {
			defaultPage = ids[idx-1]
		}
	}

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := defaults
	cfg.Title = title
	cfg.Content = contentPath
	cfg.OutputDir = outputDir
	cfg.DefaultPage = defaultPage
	for _, id := range ids {
		cfg.Pages = append(cfg.Pages, PageEntry{ID: id, Title: formatTitle(id)})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

// detectPageIDs returns the page ids of a local content document, or nil when
// it cannot be read.
func detectPageIDs(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	doc, err := content.Decode(f)
	if err != nil {
		return nil
	}
	return doc.IDs()
}

// formatTitle turns a page id like "tic-tac-toe" into "Tic Tac Toe".
func formatTitle(id string) string {
	words := strings.FieldsFunc(id, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
