package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/elevation"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type shadowOptions struct {
	level      int
	jsonOutput bool
}

func newShadowCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &shadowOptions{level: -1}

	cmd := &cobra.Command{
		Use:   "shadow",
		Short: "Print the computed elevation shadows",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := openEngine(root, log)
			if err != nil {
				return err
			}

			first, last := 0, elevation.MaxLevel
			if opts.level >= 0 {
				first, last = opts.level, opts.level
			}

			type entry struct {
				Level  int              `json:"level"`
				Shadow elevation.Shadow `json:"shadow"`
				CSS    string           `json:"css"`
			}
			entries := make([]entry, 0, last-first+1)
			for level := first; level <= last; level++ {
				shadow, err := engine.Shadow(level)
				if err != nil {
					return err
				}
				entries = append(entries, entry{Level: level, Shadow: shadow, CSS: shadow.CSS()})
			}

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", theme.ShadowVarName(e.Level), e.CSS)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.level, "level", -1, "Single level to print (default: all)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Emit JSON")

	return cmd
}
