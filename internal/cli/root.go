package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortviz/pkg/buildinfo"
	"github.com/matzehuels/sortviz/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The logger is attached to every command's context and receives the sort
// and render lifecycle events.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sortviz animates sorting algorithms step by step",
		Long:         `Sortviz animates comparison sorts in the terminal: bubble, insertion and selection sort as bars, merge and quick sort as a growing call tree you can pan and scroll.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := &logHooks{logger: c.Logger}
			observability.SetSortHooks(hooks)
			observability.SetRenderHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}
