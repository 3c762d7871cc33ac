package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/jsphweid/ukulala/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose     bool
	tuningFlag  string
	backendFlag string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ukulala",
	Short: "Ukulele chord and progression reference",
	Long: `Resolves Roman-numeral progressions in any key to chord names and shows
ukulele fingerings for them, in standard (GCEA) or baritone (DGBE) tuning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// a missing .env is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&tuningFlag, "tuning", "t", "", "standard or baritone (default: the chosen tuning)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", constants.GetPrefsBackend(), "preference storage: memory, sqlite or dynamodb")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
