package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/varmint/internal/domain"
	m "github.com/mouse-blink/varmint/internal/model"
)

var runTestCommandFlag string
var runTypesFlag []string
var runTimeoutFlag int
var runParallelFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Run mutation testing",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := targetFiles(args, viper.GetStringSlice(excludeConfigKey))
			if err != nil {
				return err
			}

			config, err := m.NewMutationConfig(
				files,
				viper.GetString(testCommandConfigKey),
				mutationTypes(viper.GetStringSlice(typesConfigKey)),
				viper.GetInt(timeoutConfigKey),
				viper.GetBool(parallelConfigKey),
			)
			if err != nil {
				return err
			}

			engine := domain.NewEngine(config, domain.NewGeneratorSet(), parserAdapter, fsAdapter, testAdapter, ui)

			ctx := cmd.Context()

			score, err := engine.Run(ctx)
			if err != nil {
				return fmt.Errorf("mutation run: %w", err)
			}

			if err := ui.DisplayReport(ctx, engine.GenerateReport(score)); err != nil {
				return err
			}

			reportsDir := m.Path(viper.GetString(outputFlagName))
			if err := reportStore.SaveScore(reportsDir, score); err != nil {
				return fmt.Errorf("save score: %w", err)
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runTestCommandFlag, testCommandFlagName, "c", viper.GetString(testCommandConfigKey), "test command executed per mutation")
	bindFlagToConfig(cmd.Flags().Lookup(testCommandFlagName), testCommandConfigKey)

	cmd.Flags().StringArrayVarP(&runTypesFlag, typeFlagName, "t", viper.GetStringSlice(typesConfigKey), "mutation category to apply (can be repeated; default all)")
	bindFlagToConfig(cmd.Flags().Lookup(typeFlagName), typesConfigKey)

	cmd.Flags().IntVar(&runTimeoutFlag, timeoutFlagName, viper.GetInt(timeoutConfigKey), "timeout in seconds for one test command invocation")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.Flags().BoolVarP(&runParallelFlag, parallelFlagName, "p", viper.GetBool(parallelConfigKey), "advisory: parallelize mutation generation (evaluation stays sequential)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

func mutationTypes(names []string) []m.MutationType {
	types := make([]m.MutationType, 0, len(names))
	for _, name := range names {
		types = append(types, m.MutationType(name))
	}

	return types
}
