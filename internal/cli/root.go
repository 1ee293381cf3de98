package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/restruct/internal/version"
	"github.com/arthur-debert/restruct/pkg/config"
	"github.com/arthur-debert/restruct/pkg/core"
	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/logging"
	"github.com/arthur-debert/restruct/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the state shared by the root command and error reporting
type app struct {
	verbosity int
	format    string
	cfg       *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *app) {
	initTemplateFormatting()

	a := &app{}
	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfiguration()
			if err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to load configuration")
			}
			a.cfg = cfg

			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: a.verbosity,
				File:      cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}

			result, err := core.Restructure(core.RestructureOptions{
				RuleFile: args[0],
				Config:   a.cfg,
			})
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVar(&a.format, "format", "", MsgFlagFormat)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd, a
}

// outputFormat prefers the --format flag over the output.format setting
func (a *app) outputFormat() (ui.Format, error) {
	name := a.format
	if name == "" && a.cfg != nil {
		name = a.cfg.Output.Format
	}
	return ui.ParseFormat(name)
}

// reportError writes err as a single message in the requested format,
// falling back to plain text when the format itself is the problem
func (a *app) reportError(w io.Writer, err error) {
	format, ferr := a.outputFormat()
	if ferr != nil {
		format = ui.FormatText
	}
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr == nil && renderer.RenderError(err) == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}

// Execute runs the command line and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd, a := newRootCmd()
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		a.reportError(stderr, err)
		return 1
	}
	return 0
}
