package cmd

import (
	"encoding/json"
	"fmt"

	dashboardadapter "github.com/bnema/coachdesk/internal/adapters/render/dashboard"
	"github.com/bnema/coachdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *app) *cobra.Command {
	var coachID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the ranked task queue for a coach",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := app.service.GetCoachTasks(cmd.Context(), domain.CoachID(coachID))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tasks)
			}

			rendered, err := app.tasksRenderer(tasks, dashboardadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&coachID, "coach", "", "coach ID to evaluate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit raw JSON instead of the task view")
	_ = cmd.MarkFlagRequired("coach")

	return cmd
}
