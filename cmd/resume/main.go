// Command resume prints the terminal résumé to stdout.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/PavanAnganna90/portfolio/internal/config"
	"github.com/PavanAnganna90/portfolio/internal/portfolio"
	"github.com/PavanAnganna90/portfolio/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Profile())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	site := portfolio.Default().WithContact(cfg.Site.Email, cfg.Site.Photo)
	if err := site.Validate(); err != nil {
		return fmt.Errorf("invalid site content: %w", err)
	}

	opts := terminal.Color
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		opts = terminal.Plain
	}

	return terminal.Render(os.Stdout, site, opts)
}
