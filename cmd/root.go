package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "coachdesk",
		Short:         "coachdesk: derive client statuses and ranked coach tasks",
		Long:          "coachdesk reads the coaching system of record and derives, per client, one authoritative coaching status plus a globally ranked queue of actionable tasks for the coach.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newClientsCmd(app),
		newTasksCmd(app),
	)

	return rootCmd
}
