package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/varmint/internal/domain"
	m "github.com/mouse-blink/varmint/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List source files and mutation counts",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := targetFiles(args, viper.GetStringSlice(excludeConfigKey))
			if err != nil {
				return err
			}

			// Generation needs a full config; the test command is never
			// executed by list.
			config, err := m.NewMutationConfig(files, viper.GetString(testCommandConfigKey), nil, viper.GetInt(timeoutConfigKey), false)
			if err != nil {
				return err
			}

			engine := domain.NewEngine(config, domain.NewGeneratorSet(), parserAdapter, fsAdapter, testAdapter, ui)

			ctx := cmd.Context()

			var all []m.Mutation

			for _, file := range files {
				mutations, err := engine.GenerateMutations(ctx, file)
				if err != nil {
					return err
				}

				all = append(all, mutations...)
			}

			return ui.DisplayEstimation(ctx, all)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
