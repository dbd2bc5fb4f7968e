package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	"github.com/artisanexperiences/xhtmlren/internal/logger"
	"github.com/artisanexperiences/xhtmlren/internal/naming"
	"github.com/artisanexperiences/xhtmlren/internal/ui"
	"github.com/artisanexperiences/xhtmlren/internal/validation"
)

// RunContext is the resolved configuration and global flags for one command.
type RunContext struct {
	Dir     string
	Config  *config.Config
	DryRun  bool
	Verbose bool
	Quiet   bool
	// Interactive is true when prompts and spinners may be shown.
	Interactive bool
}

// openRunContext loads the config for dir, applies flag overrides, validates
// the result and initialises logging.
func openRunContext(cmd *cobra.Command, dir string) (*RunContext, error) {
	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, cfg)

	rc := &RunContext{
		Dir:         dir,
		Config:      cfg,
		DryRun:      mustGetBool(cmd, "dry-run"),
		Verbose:     mustGetBool(cmd, "verbose"),
		Quiet:       mustGetBool(cmd, "quiet"),
		Interactive: shouldPrompt(cmd),
	}

	logger.Init(&logger.Config{
		Level:  logLevel(cmd, rc),
		Output: cmd.ErrOrStderr(),
		JSON:   mustGetString(cmd, "log-format") == logger.FormatJSON,
	})

	if err := validation.NewConfigValidator(naming.ListRegistered).Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug("resolved config",
		"extension", cfg.Extension,
		"convention", cfg.Convention,
		"prefix", cfg.Prefix,
		"width", cfg.Width,
		"start", cfg.Start,
		"sort", cfg.Sort,
	)

	return rc, nil
}

// loadConfig reads --config when given, otherwise dir/xhtmlren.yaml. An
// empty dir means there is no project directory: defaults plus XHTMLREN_*
// environment overrides apply.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	if path := mustGetString(cmd, "config"); path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	if dir == "" {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// applyFlagOverrides copies every explicitly set flag onto cfg. Flags the
// command does not define are ignored.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}

	if changed("ext") {
		cfg.Extension = config.NormalizeExtension(mustGetString(cmd, "ext"))
	}
	if changed("convention") {
		cfg.Convention = mustGetString(cmd, "convention")
	}
	if changed("prefix") {
		cfg.Prefix = mustGetString(cmd, "prefix")
	}
	if changed("width") {
		cfg.Width = mustGetInt(cmd, "width")
	}
	if changed("start") {
		cfg.Start = mustGetInt(cmd, "start")
	}
	if changed("pattern") {
		cfg.Pattern = mustGetString(cmd, "pattern")
	}
	if changed("include") {
		cfg.Include = mustGetString(cmd, "include")
	}
	if changed("sort") {
		cfg.Sort = mustGetString(cmd, "sort")
	}
}

// logLevel picks --log-level first, then --verbose or --quiet, then the config.
func logLevel(cmd *cobra.Command, rc *RunContext) string {
	if level := mustGetString(cmd, "log-level"); level != "" {
		return level
	}
	switch {
	case rc.Verbose:
		return "debug"
	case rc.Quiet:
		return "error"
	}
	return rc.Config.LogLevel
}

func shouldPrompt(cmd *cobra.Command) bool {
	if mustGetBool(cmd, "no-interactive") {
		return false
	}
	return ui.IsInteractive()
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errInvalidArguments, err)
		}
		return nil
	}
}

func maximumNArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errInvalidArguments, err)
		}
		return nil
	}
}
