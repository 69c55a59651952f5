package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/token"
)

type rootFlags struct {
	verbose  bool
	stateDir string
	mode     string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "Themekit resolves design tokens into live CSS custom properties",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.stateDir, "state-dir", defaultStateDir(), "Directory for persisted theme state")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "light", "Theme mode (light or dark)")

	cmd.AddCommand(newResolveCmd(flags, log))
	cmd.AddCommand(newShadowCmd(flags, log))
	cmd.AddCommand(newPreviewCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "themekit")
}

func (f *rootFlags) tokenMode() token.Mode {
	mode := token.Mode(f.mode)
	if !mode.Valid() {
		return token.ModeLight
	}
	return mode
}

// openEngine wires the store and theme engine for the persisted state.
func openEngine(flags *rootFlags, log *logger.Logger) (*theme.Engine, error) {
	st, err := store.Open(store.Options{Dir: flags.stateDir, Logger: log})
	if err != nil {
		return nil, err
	}
	return theme.New(theme.Options{
		Store:  st,
		Logger: log,
		Mode:   flags.tokenMode(),
	}), nil
}
