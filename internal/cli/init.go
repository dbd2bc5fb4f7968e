package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
	"github.com/artisanexperiences/xhtmlren/internal/naming"
	"github.com/artisanexperiences/xhtmlren/internal/ui"
	"github.com/artisanexperiences/xhtmlren/internal/validation"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Write a default xhtmlren.yaml",
		Long: `Writes xhtmlren.yaml into DIR (default: the current directory).

An existing file is updated in place: the rename settings are rewritten and
any other keys are kept.

Arguments:
  DIR  Directory to write xhtmlren.yaml into`,
		Args: maximumNArgs(1),
		RunE: runInit,
	}

	addConventionFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", absDir, xerrors.ErrDirectoryNotFound)
		}
		return fmt.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", absDir, xerrors.ErrDirectoryNotFound)
	}

	cfg, err := config.Load(absDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	if err := validation.NewConfigValidator(naming.ListRegistered).Validate(cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	path := filepath.Join(absDir, config.FileName)

	if mustGetBool(cmd, "dry-run") {
		ui.PrintInfo(out, fmt.Sprintf("[DRY RUN] Would write %s", path))
		return nil
	}

	if err := config.Save(absDir, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if !mustGetBool(cmd, "quiet") {
		ui.PrintSuccess(out, fmt.Sprintf("Wrote %s", path))
		ui.PrintDone(out, "Config ready!")
		ui.PrintInfo(out, "Next: "+ui.CodeStyle.Render("xhtmlren rename "+dir))
	}

	return nil
}
