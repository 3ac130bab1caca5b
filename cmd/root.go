package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Replaced in PersistentPreRunE, no-op until then
var logger = zap.NewNop()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio-builder",
	Short: "Validate portfolio profiles and export them as PDF resumes",
	Long: `portfolio-builder checks portfolio profile data the same way the editor
forms do, normalizes portfolio records from the backend or from local JSON/YAML
files into a canonical resume, and renders that resume to PDF with pandoc.`,
	SilenceUsage:      true,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.portfolio-builder/config.json)")
}

// initLogger builds the diagnostic logger. Warnings and errors go to stderr,
// --verbose lowers the level to debug.
func initLogger(cmd *cobra.Command, args []string) (err error) {
	logger, err = buildLogger(getVerbose())
	if err != nil {
		err = errors.Wrap(err, "failed to initialize logger")
		return err
	}
	return err
}

func buildLogger(debug bool) (l *zap.Logger, err error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err = config.Build()
	return l, err
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
