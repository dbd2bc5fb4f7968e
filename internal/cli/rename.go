package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/xhtmlren/internal/rename"
	"github.com/artisanexperiences/xhtmlren/internal/ui"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename DIR",
		Short: "Rename the content files in a directory",
		Long: `Renames every file in DIR that ends in the configured extension.

The new names come from the naming convention (see 'xhtmlren conventions').
Settings are read from --config, then DIR/xhtmlren.yaml, then XHTMLREN_*
environment variables, and finally the flags below.

Arguments:
  DIR  Directory holding the files to rename (not searched recursively)`,
		Args: exactArgs(1),
		RunE: runRename,
	}

	addConventionFlags(cmd)
	cmd.Flags().Int("start", 0, "First position for numbered conventions")
	cmd.Flags().String("pattern", "", "Go template for the template convention")
	cmd.Flags().String("include", "", "Only rename files matching this glob")
	cmd.Flags().String("sort", "", "File order: natural or lexical")
	cmd.Flags().Bool("force", false, "Skip confirmation prompt")

	return cmd
}

// addConventionFlags registers the flags shared by rename and smoke.
func addConventionFlags(cmd *cobra.Command) {
	cmd.Flags().String("ext", "", "File extension to rename (default .xhtml)")
	cmd.Flags().String("convention", "", "Naming convention (default sequence)")
	cmd.Flags().String("prefix", "", "Prefix for numbered names")
	cmd.Flags().Int("width", 0, "Zero padding width for numbered names")
}

func runRename(cmd *cobra.Command, args []string) error {
	rc, err := openRunContext(cmd, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// The spinner owns the terminal while renames run, so per-file lines are
	// printed from the results afterwards instead.
	showSpinner := rc.Interactive && !rc.Quiet && !rc.DryRun

	r, err := rename.New(rc.Config, rename.Options{
		DryRun: rc.DryRun,
		Quiet:  rc.Quiet || showSpinner,
	}, out)
	if err != nil {
		return err
	}

	plan, err := r.Plan(rc.Dir)
	if err != nil {
		return err
	}

	if plan.Total() == 0 {
		if !rc.Quiet {
			ui.PrintInfo(out, fmt.Sprintf("No %s files found in %s", plan.Ext, rc.Dir))
		}
		return nil
	}

	if !rc.Quiet {
		fmt.Fprintln(out, ui.RenderPlanTable(plan.Rows()))
	}

	if len(plan.Ops) > 0 && !rc.DryRun && !mustGetBool(cmd, "force") && rc.Interactive {
		confirmed, err := ui.ConfirmRename(rc.Dir, len(plan.Ops))
		if err != nil {
			return err
		}
		if !confirmed {
			ui.PrintWarning(out, "Rename cancelled, no files were changed")
			return nil
		}
	}

	var results []rename.Result
	apply := func() error {
		var err error
		results, err = r.Apply(plan)
		return err
	}

	if showSpinner && len(plan.Ops) > 0 {
		err = ui.RunWithSpinner(fmt.Sprintf("Renaming %d file(s)...", len(plan.Ops)), apply)
	} else {
		err = apply()
	}
	if err != nil {
		return err
	}

	if rc.Quiet || rc.DryRun {
		return nil
	}

	renamed := 0
	for _, res := range results {
		if res.Skipped || res.Error != nil {
			continue
		}
		renamed++
		if showSpinner {
			fmt.Fprintf(out, "Renamed: %s -> %s\n", res.Op.From, res.Op.To)
		}
	}
	if renamed > 0 {
		ui.PrintSuccess(out, fmt.Sprintf("Renamed %d file(s) with the %s convention", renamed, r.Convention().Name()))
	}

	return nil
}
