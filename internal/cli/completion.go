package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphspin/pkg/layout"
	"github.com/matzehuels/graphspin/pkg/render/frame"
)

// planeNames lists the rotation planes accepted by --plane.
var planeNames = []string{
	layout.PlaneXY.String(),
	layout.PlaneXZ.String(),
	layout.PlaneYZ.String(),
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts.

Completions cover subcommands, graph and layout JSON files, and the fixed
choices of --format and --plane.

  bash:        source <(graphspin completion bash)
  zsh:         graphspin completion zsh > "${fpath[1]}/_graphspin"
  fish:        graphspin completion fish | source
  powershell:  graphspin completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeJSONFiles completes the single graph file argument.
func completeJSONFiles(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeChoices returns a flag completion function offering a fixed set.
func completeChoices(choices ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return choices, cobra.ShellCompDirectiveNoFileComp
	}
}

// registerCompletions attaches file and flag completions to cmd. Flags the
// command does not define are skipped.
func registerCompletions(cmd *cobra.Command, flags map[string][]string) {
	cmd.ValidArgsFunction = completeJSONFiles
	for name, choices := range flags {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, completeChoices(choices...))
	}
	if cmd.Flags().Lookup("layout") != nil {
		_ = cmd.MarkFlagFilename("layout", "json")
	}
}

// animateCompletions holds the fixed choices of the animate flags.
var animateCompletions = map[string][]string{
	"format": frame.Formats,
	"plane":  planeNames,
}
