package cli

import (
	"fmt"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var exports exportPaths

	cmd := &cobra.Command{
		Use:   "import PLAN.yaml",
		Short: "Show or re-export a plan saved with --yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plan.JobTitle != "" {
				fmt.Fprintln(out, formatter.Bold("Target role: ")+plan.JobTitle)
			}
			if len(plan.Skills) > 0 {
				fmt.Fprintln(out, formatter.FormatSkills("Skills", plan.Skills))
			}
			fmt.Fprintln(out, formatter.FormatSchedule(plan.Schedule))
			if exports.empty() {
				fmt.Fprint(out, formatter.FormatDailyTasks(plan.Tasks))
				return nil
			}
			return exports.write(out, exportData{
				jobTitle: plan.JobTitle,
				skills:   plan.Skills,
				schedule: plan.Schedule,
				tasks:    plan.Tasks,
			}, app.now())
		},
	}

	exports.register(cmd)
	return cmd
}
