package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/varmint/internal/domain"
	m "github.com/mouse-blink/varmint/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the previously saved mutation score",
		Long:  "Re-render the report for the score saved in the reports directory by a previous run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsDir := m.Path(viper.GetString(outputFlagName))

			score, err := reportStore.LoadScore(reportsDir)
			if err != nil {
				return err
			}

			return ui.DisplayReport(cmd.Context(), domain.GenerateReport(score))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
