package cli

import (
	"github.com/spf13/cobra"
)

// NewRoot creates and configures the root command
func NewRoot(params *CmdParams) *cobra.Command {
	if params.Use == "" {
		params.Use = "spending"
	}
	if params.Short == "" {
		params.Short = "Track personal spending from the terminal"
	}
	if params.Long == "" {
		params.Long = `Record expenses, tag them with categories and see monthly and yearly
summaries. Data is kept locally in the configured key-value backend.`
	}

	app := params.App
	rootCmd := &cobra.Command{
		Use:           params.Use,
		Short:         params.Short,
		Long:          params.Long,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return app.Bootstrap(cmd)
		},
	}

	if params.Palette == nil {
		params.Palette = []*cobra.Command{
			NewAddCmd(app),
			NewDeleteCmd(),
			NewCategoryCmd(app),
			NewHistoryCmd(app),
			NewMonthlyCmd(app),
			NewAnalysisCmd(app),
			NewYearsCmd(),
		}
	}
	rootCmd.AddCommand(params.Palette...)

	return rootCmd
}

// needsStore reports whether cmd works on spending data. Cobra's help and
// shell completion commands never touch the backend.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
