package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/jask/jaskcal/internal/config"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "jaskcal is interactive; run it in a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	m, err := newModel(cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	if fm, ok := final.(*model); ok {
		printSelection(fm)
	}
}

func printSelection(m *model) {
	sel := m.picked
	if d, ok := sel.Single(); ok {
		fmt.Println(d.Format("2006-01-02"))
		return
	}
	if lo, hi, ok := sel.Range(); ok {
		fmt.Printf("%s..%s\n", lo.Format("2006-01-02"), hi.Format("2006-01-02"))
	}
}
