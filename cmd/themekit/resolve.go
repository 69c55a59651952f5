package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/resolve"
	"github.com/alexisbeaulieu97/themekit/internal/source"
)

type resolveOptions struct {
	sourceDir  string
	gitRepo    string
	gitRev     string
	prefix     string
	jsonOutput bool
}

func newResolveCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the theme into CSS custom properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := resolveVars(cmd, root, log, opts)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(vars))
			for name := range vars {
				if opts.prefix == "" || strings.HasPrefix(name, opts.prefix) {
					names = append(names, name)
				}
			}
			sort.Strings(names)

			if opts.jsonOutput || !term.IsTerminal(int(os.Stdout.Fd())) {
				filtered := make(map[string]string, len(names))
				for _, name := range names {
					filtered[name] = vars[name]
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(filtered)
			}

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, vars[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sourceDir, "source", "", "Resolve documents from a directory instead of the persisted state")
	cmd.Flags().StringVar(&opts.gitRepo, "git-repo", "", "Resolve documents from a git repository")
	cmd.Flags().StringVar(&opts.gitRev, "git-rev", "HEAD", "Revision to read when --git-repo is set")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Only print variables with this name prefix")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Emit JSON")

	return cmd
}

// resolveVars picks the document source: an explicit directory or git
// revision resolves stateless; otherwise the persisted engine state is used.
func resolveVars(cmd *cobra.Command, root *rootFlags, log *logger.Logger, opts *resolveOptions) (map[string]string, error) {
	mode := root.tokenMode()

	var set source.DocumentSet
	switch {
	case opts.sourceDir != "":
		loaded, err := source.NewLoader(log).LoadSet(cmd.Context(), opts.sourceDir)
		if err != nil {
			return nil, err
		}
		set = loaded
	case opts.gitRepo != "":
		loaded, err := source.NewGitSource(opts.gitRepo, source.NewLoader(log)).LoadSet(cmd.Context(), opts.gitRev)
		if err != nil {
			return nil, err
		}
		set = loaded
	default:
		engine, err := openEngine(root, log)
		if err != nil {
			return nil, err
		}
		return engine.ResolvedVars(mode), nil
	}

	resolver := resolve.New(set.Tokens, set.Theme)
	vars, unresolved := resolve.BuildResolvedTheme(resolver, set.UIKit, mode)
	for _, err := range unresolved {
		log.Warn(fmt.Sprintf("unresolved: %v", err))
	}
	return vars, nil
}
