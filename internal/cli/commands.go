package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/volt/internal/commands"
	"github.com/arthur-debert/volt/internal/version"
	"github.com/arthur-debert/volt/pkg/config"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/logging"
	"github.com/arthur-debert/volt/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	verbosity  int
	noColor    bool
	projectDir string
	logFile    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "volt",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.Options{
				Verbosity: g.verbosity,
				NoColor:   g.noColor,
				LogFile:   g.logFile,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, commands.MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&g.projectDir, "project-dir", "C", "", commands.MsgFlagProjectDir)
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", commands.MsgFlagLogFile)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newBuildCmd(g))
	rootCmd.AddCommand(newPlanCmd(g))
	rootCmd.AddCommand(newInitCmd(g))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig resolves the project configuration, applying overrides taken
// from command flags last.
func (g *globalFlags) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ProjectDir: g.projectDir,
		Overrides:  overrides,
	})
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrConfigLoad, commands.MsgErrLoadConfig)
	}
	log.Debug().
		Str("projectDir", cfg.ProjectDir).
		Str("configPath", cfg.ConfigPath).
		Msg("Configuration loaded")
	return cfg, nil
}

// renderer picks the output renderer for cmd. --no-color turns the
// automatic choice into plain text.
func (g *globalFlags) renderer(cmd *cobra.Command, format string) (ui.Renderer, error) {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == ui.FormatAuto && g.noColor {
		f = ui.FormatText
	}
	return ui.NewRenderer(f, cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: commands.MsgVersionShort,
		Long:  commands.MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, commands.MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, commands.MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, commands.MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 commands.MsgCompletionShort,
		Long:                  commands.MsgCompletionLong,
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
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  commands.MsgManShort,
		Long:   commands.MsgManLong,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "could not create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "VOLT",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "could not write man pages")
			}
			fmt.Fprintf(cmd.OutOrStdout(), commands.MsgManWritten+"\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", commands.MsgFlagManDir)
	return cmd
}
