package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	"github.com/artisanexperiences/xhtmlren/internal/naming"
	"github.com/artisanexperiences/xhtmlren/internal/ui"
)

// describeOptions lets every convention build, including template which
// refuses an empty pattern.
var describeOptions = naming.Options{
	Prefix:  config.DefaultPrefix,
	Width:   config.DefaultWidth,
	Pattern: "{{ .Stem }}{{ .Ext }}",
}

func newConventionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conventions",
		Short: "List the available naming conventions",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := conventionRows()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable([]string{"NAME", "DESCRIPTION"}, rows))
			return nil
		},
	}
}

func conventionRows() ([][]string, error) {
	var rows [][]string
	for _, name := range naming.ListRegistered() {
		c, err := naming.Create(name, describeOptions)
		if err != nil {
			return nil, fmt.Errorf("describing %s: %w", name, err)
		}
		description := c.Description()
		if name == config.DefaultConvention {
			description += " (default)"
		}
		rows = append(rows, []string{name, description})
	}
	return rows, nil
}
