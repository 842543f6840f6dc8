package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgerline/taxengine/internal/calculation"
	"github.com/ledgerline/taxengine/internal/rules"
	"github.com/ledgerline/taxengine/internal/tui"
)

func main() {
	rulesFile := flag.String("rules-file", "", "YAML rule override file")
	taxYear := flag.Int("tax-year", 0, "Tax year (default: latest supported)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: taxengine-tui [flags] <profile-file>")
		os.Exit(1)
	}
	profilePath := flag.Arg(0)
	if _, err := os.Stat(profilePath); os.IsNotExist(err) {
		fmt.Printf("Error: profile file not found: %s\n", profilePath)
		os.Exit(1)
	}

	repo := rules.NewRepository()
	if *rulesFile != "" {
		var err error
		repo, err = rules.LoadFile(*rulesFile)
		if err != nil {
			fmt.Printf("Error loading rules: %v\n", err)
			os.Exit(1)
		}
	}
	engine := calculation.NewEngine(repo)

	year := *taxYear
	if year == 0 {
		year = repo.LatestYear()
	}

	p := tea.NewProgram(
		tui.NewModel(profilePath, engine, year),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
