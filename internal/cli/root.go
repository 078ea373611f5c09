package cli

import (
	"fmt"

	"github.com/arthur-debert/sigslot/internal/version"
	"github.com/arthur-debert/sigslot/pkg/config"
	"github.com/arthur-debert/sigslot/pkg/demo"
	"github.com/arthur-debert/sigslot/pkg/logging"
	"github.com/arthur-debert/sigslot/pkg/output"
	"github.com/arthur-debert/sigslot/pkg/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// state is shared by the commands of one root command
type state struct {
	verbosity  int
	configPath string
	noColor    bool
	plain      bool

	cfg *config.Config
}

// NewRootCmd builds the sigslot command tree
func NewRootCmd() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:   "sigslot",
		Short: "Run and inspect signal/slot scenarios",
		Long: `sigslot drives the typed signal/slot registry through a catalog of
scenarios: connecting handlers, collecting their results in order,
disconnecting them one by one, moving connections and releasing scopes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&st.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/sigslot/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&st.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&st.plain, "plain", false, "One line per step instead of tables")

	rootCmd.AddCommand(newListCmd(st))
	rootCmd.AddCommand(newRunCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if err := installTopics(rootCmd, st); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// installTopics adds the builtin help topics. Markdown is rendered with
// glamour only when colors are enabled for the output.
func installTopics(rootCmd *cobra.Command, st *state) error {
	manager, err := topics.Builtin(topics.Options{})
	if err != nil {
		return err
	}
	manager.Install(rootCmd, func(cmd *cobra.Command) topics.Renderer {
		mode := config.ColorAuto
		if st.noColor {
			mode = config.ColorNever
		}
		if output.ColorEnabled(cmd.OutOrStdout(), mode) {
			return topics.NewGlamourRenderer()
		}
		return topics.PlainRenderer{}
	})
	return nil
}

// setup loads the configuration, applies flag overrides and configures
// logging
func (st *state) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadWithOverrides(st.configPath, st.overrides())
	if err != nil {
		return err
	}
	st.cfg = cfg

	logging.SetupLoggerTo(cfg.Log.Verbosity, cfg.Log.File)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// overrides maps the persistent flags that were given to config keys
func (st *state) overrides() map[string]interface{} {
	o := map[string]interface{}{}
	if st.verbosity > 0 {
		o["log.verbosity"] = st.verbosity
	}
	if st.noColor {
		o["output.color"] = config.ColorNever
	}
	if st.plain {
		o["output.format"] = config.FormatPlain
	}
	return o
}

func (st *state) renderer(cmd *cobra.Command) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), st.cfg.Output)
}

func newListCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.renderer(cmd).List(demo.Catalog().Items())
		},
	}
}

func newRunCmd(st *state) *cobra.Command {
	var argValues []int

	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run scenarios (all of them by default)",
		Long: `Run the named scenarios in the given order. Without names, the
scenarios listed in demo.scenarios are run, or the whole catalog when that
list is empty. Each scenario checks its own results and the run stops at the
first failing one.`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return demo.Catalog().List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = st.cfg.Demo.Scenarios
			}
			env := demo.Env{
				Args:   st.cfg.Demo.Args,
				Logger: logging.GetLogger("demo"),
			}
			if cmd.Flags().Changed("arg") {
				env.Args = argValues
			}

			done := logging.LogOperationStart(env.Logger, "run")
			results, runErr := demo.RunAll(cmd.Context(), names, env)
			done()

			if err := st.renderer(cmd).Results(results); err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().IntSliceVar(&argValues, "arg", nil, "Arguments emitted by int scenarios (overrides demo.args)")
	return cmd
}

func newConfigCmd(st *state) *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := st.cfg
			if defaults {
				var err error
				if cfg, err = config.Defaults(); err != nil {
					return err
				}
			}
			data, err := config.Dump(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml or yaml")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults, ignoring files, env and flags")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// The version command works without a valid config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sigslot version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
