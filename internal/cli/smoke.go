package cli

import (
	"github.com/spf13/cobra"

	"github.com/artisanexperiences/xhtmlren/internal/fixture"
	"github.com/artisanexperiences/xhtmlren/internal/rename"
)

func newSmokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run the rename against a throwaway set of sample files",
		Long: `Creates six sample files (main, main-5, chapter1, chapter2, chapter3,
backmatter) in a new temporary directory, prints the listing, runs the
rename on it, prints the listing again and removes the directory.

The run fails if the number of files changes.`,
		Args: exactArgs(0),
		RunE: runSmoke,
	}

	addConventionFlags(cmd)
	cmd.Flags().Bool("keep", false, "Leave the temporary directory in place")

	return cmd
}

func runSmoke(cmd *cobra.Command, args []string) error {
	// The fixture directory does not exist yet, so xhtmlren.yaml is never read
	// here; --config, XHTMLREN_* variables and flags still apply.
	rc, err := openRunContext(cmd, "")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	r, err := rename.New(rc.Config, rename.Options{
		DryRun: rc.DryRun,
		Quiet:  rc.Quiet,
	}, out)
	if err != nil {
		return err
	}

	d := fixture.NewDriver(r)
	d.Out = out
	d.Ext = rc.Config.Extension
	d.Keep = mustGetBool(cmd, "keep")
	return d.Run()
}
