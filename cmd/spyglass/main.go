package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"spyglass/internal/adapters/reflectval"
	"spyglass/internal/adapters/tui"
	"spyglass/internal/application"
	"spyglass/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: spyglass <file.json>")
		os.Exit(2)
	}

	app := tui.NewApp(
		reflectval.New(),
		os.Args[1],
		application.WithPageSize(config.PageSize()),
		application.WithMaxPageState(config.MaxPageState()),
	)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
