package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BenjaminKobjolke/FMANGoConemu/internal/version"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/config"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/core"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	dryRun     bool
	configFile string
	terminal   string
	noAlert    bool
}

// overrides turns the flags the user actually set into config keys
func (f *globalFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("terminal") {
		out["terminal.executable"] = f.terminal
	}
	if flags.Changed("no-alert") {
		out["alert.enabled"] = !f.noAlert
	}
	if flags.Changed("dry-run") {
		out["dry_run"] = f.dryRun
	}
	return out
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}
	var cfg *config.Config
	var setupErr error

	rootCmd := &cobra.Command{
		Use:     "goconemu [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(config.LoadOptions{
				ConfigFile: flags.configFile,
				Overrides:  flags.overrides(cmd),
			})
			if err != nil && cmd == cmd.Root() {
				// the terminal must still open: carry on with the defaults and
				// let Open report the failure
				setupErr = err
				loaded, err = config.Load(config.LoadOptions{
					Overrides:    flags.overrides(cmd),
					DefaultsOnly: true,
				})
				if err != nil {
					err = setupErr
				}
			}
			if err != nil {
				// still get the error on the console
				logging.SetupLogger(logging.Options{Verbosity: flags.verbosity})
				return err
			}
			cfg = loaded

			logging.SetupLogger(logging.Options{
				Verbosity: flags.verbosity,
				LogFile:   cfg.Logging.File,
			})
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			if setupErr != nil {
				log.Warn().Err(setupErr).Msg("Failed to load configuration, using defaults")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := pathArg(args)
			if err != nil {
				return err
			}

			comps := core.NewComponents(cfg)
			result, err := core.Open(commandContext(cmd), core.OpenOptions{
				Path:     path,
				Resolver: comps.Resolver,
				Launcher: comps.Launcher,
				Alert:    comps.Alert,
				LogFile:  cfg.Logging.File,
				SetupErr: setupErr,
				Logger:   logging.GetLogger("core.open"),
			})
			if result != nil && result.Fallback {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackNotice, cfg.Logging.File)
			}
			if err == nil && cfg.DryRun {
				fmt.Fprintln(cmd.ErrOrStderr(), MsgDryRunNotice)
			}
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&flags.terminal, "terminal", "", MsgFlagTerminal)
	pf.BoolVar(&flags.noAlert, "no-alert", false, MsgFlagNoAlert)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, "{{.Version}}"))

	current := func() *config.Config { return cfg }
	rootCmd.AddCommand(newResolveCmd(current))
	rootCmd.AddCommand(newMappingsCmd(current))
	rootCmd.AddCommand(newGenConfigCmd(current))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newResolveCmd(cfg func() *config.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: MsgResolveShort,
		Long:  MsgResolveLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(output)
			if err != nil {
				return err
			}

			comps := core.NewComponents(cfg())
			res, err := comps.Resolver.Resolve(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return renderResolution(cmd.OutOrStdout(), res, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(formatText), MsgFlagOutput)

	return cmd
}

func newMappingsCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "mappings",
		Short: MsgMappingsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps := core.NewComponents(cfg())
			snap, err := comps.Resolver.Snapshot(commandContext(cmd))
			if err != nil {
				return err
			}
			return renderSnapshot(cmd.OutOrStdout(), snap)
		},
	}
}

func newGenConfigCmd(cfg func() *config.Config) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if template {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Template())
				return err
			}

			out, err := config.Marshal(cfg())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.String())
		},
	}
}

// pathArg returns the path argument, or the working directory without one
func pathArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, MsgErrCurrentDir)
	}
	return wd, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
