// Package cmd provides the root command and CLI setup for varmint.
package cmd

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/varmint/internal/adapter"
	"github.com/mouse-blink/varmint/internal/controller"
	m "github.com/mouse-blink/varmint/internal/model"
)

var parserAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var testAdapter adapter.TestRunnerAdapter
var reportStore adapter.ReportStore
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read and
// write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters target files for
// applicable commands.
var excludePatterns []string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	parserAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	testAdapter = adapter.NewLocalTestRunnerAdapter()
	reportStore = adapter.NewReportStore()
}

const rootLongDescription = `Varmint is a mutation testing tool that assesses the quality of a test
suite by introducing small changes (mutations) into source files and
verifying that the tests catch them. Mutations the suite does not notice
pinpoint untested or weakly tested logic.`

const runLongDescription = `Run mutation testing over the given source files.

Each generated mutation is applied to the live file (after a backup is
taken), the test command is executed, and the original file is restored
before the next mutation. The run ends with a score and a listing of
every surviving mutation.`

const listLongDescription = `List the given source files and the number of applicable mutations,
without running any tests.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "varmint",
		Short: "Mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for mutation testing reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// targetFiles converts positional args to paths, dropping ones matched by
// the exclude patterns.
func targetFiles(args []string, excludes []string) ([]m.Path, error) {
	patterns := make([]*regexp.Regexp, 0, len(excludes))

	for _, exclude := range excludes {
		pattern, err := regexp.Compile(exclude)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", exclude, err)
		}

		patterns = append(patterns, pattern)
	}

	paths := make([]m.Path, 0, len(args))

	for _, arg := range args {
		excluded := false

		for _, pattern := range patterns {
			if pattern.MatchString(arg) {
				excluded = true
				break
			}
		}

		if !excluded {
			paths = append(paths, m.Path(arg))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no target files left after applying exclude patterns")
	}

	return paths, nil
}
