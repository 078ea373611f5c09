package cli

import (
	"io"

	"github.com/arthur-debert/sigslot/internal/version"
	"github.com/arthur-debert/sigslot/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// writeCompletion writes the completion script of rootCmd for shell
func writeCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell %q", shell).
			WithDetail("supported", []string{"bash", "zsh", "fish", "powershell"})
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions in the current shell:

Bash:
  $ source <(sigslot completion bash)

Zsh:
  $ sigslot completion zsh > "${fpath[1]}/_sigslot"

Fish:
  $ sigslot completion fish | source

PowerShell:
  PS> sigslot completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:         []string{"bash", "zsh", "fish", "powershell"},
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "man",
		Short:             "Generate the man page",
		Args:              cobra.NoArgs,
		Hidden:            true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SIGSLOT",
				Section: "1",
				Source:  "sigslot " + version.Version,
				Manual:  "sigslot manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
