package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
	"github.com/artisanexperiences/xhtmlren/internal/logger"
	"github.com/artisanexperiences/xhtmlren/internal/ui"
)

var errInvalidArguments = errors.New("invalid arguments")

var rootCmd = NewRootCmd()

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xhtmlren",
		Short: "Batch rename XHTML content files",
		Long: `xhtmlren renames the content files of a directory according to a
naming convention. Renames are planned and checked for collisions before
any file is touched, and a failed run restores the original names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if mustGetBool(cmd, "no-color") {
				ui.DisableColor()
			}
			switch format := mustGetString(cmd, "log-format"); format {
			case logger.FormatText, logger.FormatJSON:
			default:
				return fmt.Errorf("%w: unknown log format %q", errInvalidArguments, format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if mustGetBool(cmd, "no-color") || !shouldPrompt(cmd) {
				return cmd.Help()
			}
			printBanner(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.PersistentFlags().Bool("dry-run", false, "Preview operations without executing")
	cmd.PersistentFlags().Bool("verbose", false, "Enable verbose output")
	cmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().Bool("no-interactive", false, "Disable interactive prompts")
	cmd.PersistentFlags().String("config", "", "Path to a config file (default: DIR/"+config.FileName+")")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", logger.FormatText, "Log format for stderr diagnostics (text, json)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errInvalidArguments, err)
	})

	cmd.AddCommand(
		newRenameCmd(),
		newSmokeCmd(),
		newConventionsCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return cmd
}

func printBanner(w io.Writer) {
	colors := []lipgloss.Color{
		lipgloss.Color("#C4B5FD"),
		lipgloss.Color("#A78BFA"),
		lipgloss.Color("#8B5CF6"),
		lipgloss.Color("#7C3AED"),
		lipgloss.Color("#6D28D9"),
		lipgloss.Color("#5B21B6"),
	}

	var title string
	for i, r := range "XHTMLREN" {
		style := lipgloss.NewStyle().
			Foreground(colors[i%len(colors)]).
			Bold(true)
		title += style.Render(string(r) + " ")
	}
	fmt.Fprintln(w, title)

	versionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginBottom(1)

	commandsStyle := lipgloss.NewStyle().
		Foreground(ui.Text)

	commands := `
Commands:
  rename       Rename the content files in a directory
  smoke        Run the rename against a throwaway set of sample files
  conventions  List the available naming conventions
  init         Write a default xhtmlren.yaml
  version      Show xhtmlren version

Run 'xhtmlren <command> --help' for more information.`

	versionLine := fmt.Sprintf("Version %s (commit: %s, built: %s)", Version, Commit, BuildDate)
	fmt.Fprintln(w, versionStyle.Render(versionLine))
	fmt.Fprintln(w, subtitleStyle.Render("Batch renamer for XHTML content files"))
	fmt.Fprintln(w, commandsStyle.Render(commands))
}

// Execute runs the root command. A user abort is not an error.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if ui.IsAbort(err) {
			return nil
		}
		ui.PrintErrorWithHint(rootCmd.ErrOrStderr(), err.Error(), hintFor(err))
		return err
	}
	return nil
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return config.ExitSuccess
	case errors.Is(err, errInvalidArguments):
		return config.ExitInvalidArguments
	case errors.Is(err, xerrors.ErrDirectoryNotFound):
		return config.ExitDirectoryNotFound
	case errors.Is(err, xerrors.ErrInvalidConfig), errors.Is(err, xerrors.ErrUnknownConvention):
		return config.ExitConfigurationError
	case errors.Is(err, xerrors.ErrCollision), errors.Is(err, xerrors.ErrInvalidTarget):
		return config.ExitCollision
	case errors.Is(err, xerrors.ErrRenameFailed), errors.Is(err, xerrors.ErrCountMismatch):
		return config.ExitRenameFailed
	default:
		return config.ExitGeneralError
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, xerrors.ErrCollision):
		return "Choose another prefix or convention, or move the conflicting file out of the way"
	case errors.Is(err, xerrors.ErrUnknownConvention):
		return "Run 'xhtmlren conventions' to see what is available"
	case errors.Is(err, xerrors.ErrInvalidConfig):
		return "Check " + config.FileName + " and the command line flags"
	case errors.Is(err, errInvalidArguments):
		return "Run 'xhtmlren --help' for usage"
	}
	return ""
}

func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}

func mustGetInt(cmd *cobra.Command, name string) int {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}
