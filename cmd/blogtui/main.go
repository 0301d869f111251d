package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell/blogging-platform/cmd/blogtui/ui"
	"github.com/inkwell/blogging-platform/pkg/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Blogging platform API base URL")
	flag.Parse()

	api := client.New(*baseURL)

	p := tea.NewProgram(ui.NewRootModel(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "blogtui: %v\n", err)
		os.Exit(1)
	}
}
