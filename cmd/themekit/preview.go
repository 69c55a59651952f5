package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

func newPreviewCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open the interactive theme preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal")
			}

			st, err := store.Open(store.Options{Dir: root.stateDir, Logger: log})
			if err != nil {
				return err
			}
			observed := cssvar.NewObservedSink(cssvar.NewMemorySink(), cssvar.DefaultDebounce)
			engine := theme.New(theme.Options{
				Store:  st,
				Sink:   observed,
				Logger: log,
				Mode:   root.tokenMode(),
			})

			model := tui.NewModel(engine)
			defer model.Close()
			model.ObserveSink(observed)

			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	return cmd
}
