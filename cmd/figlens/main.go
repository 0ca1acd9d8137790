package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"figlens/internal/adapters/figma"
	"figlens/internal/adapters/sqlite"
	"figlens/internal/adapters/tui"
	"figlens/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: figlens <file-key>")
		os.Exit(1)
	}
	fileKey := os.Args[1]

	token := config.Token()
	if token == "" {
		fmt.Fprintln(os.Stderr, "Error: FIGMA_TOKEN is not set")
		os.Exit(1)
	}

	// Initialize adapters
	client := figma.NewClient(token)
	cache := sqlite.NewCache()
	if err := cache.Open(config.CachePath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cache.Close()

	source := figma.NewCachedSource(client, cache)

	// Create and run TUI app
	app := tui.NewApp(source, fileKey)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
