package cmd

import (
	"github.com/apex/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editCmd opens the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit <image>",
	Short: "Adjust an image interactively and export the ASCII art.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		if err := opts.validate(); err != nil {
			log.Fatalf("Invalid options: %v", err)
		}

		s, err := opts.newSession(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		htmlPath := opts.htmlPath
		if htmlPath == "" {
			htmlPath = "ascii.html"
		}

		p := tea.NewProgram(newEditor(s, htmlPath), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("Editor failed: %v", err)
		}
	},
}
