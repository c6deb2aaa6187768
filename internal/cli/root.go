package cli

import (
	"fmt"
	"time"

	"github.com/avgate/avgate/internal/config"
	"github.com/avgate/avgate/internal/scanner"
	"github.com/avgate/avgate/internal/scanner/clamav"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	clamscanFlag    string
	outputFlag      string
	verboseFlag     bool
	concurrencyFlag int
	timeoutFlag     time.Duration
	excludeFlag     []string
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "avgate",
	Short: "avgate — file scanning gateway around clamscan",
	Long: `avgate answers "is this file infected?" by driving the clamscan
command-line tool, behind a swappable scanning strategy so deployments
can gate, stub, or replace the scanner without touching callers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)

		// Sync config values back to flag variables so all commands pick up
		// config-file and env-var defaults transparently.
		clamscanFlag = cfg.ClamscanPath
		outputFlag = cfg.OutputFormat
		concurrencyFlag = cfg.Concurrency
		timeoutFlag = cfg.Timeout
		excludeFlag = cfg.ExcludeGlobs

		appConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newRegistry wires the process-backed baseline strategy from cfg and, when
// exclude globs are configured, layers a gate over it via Override so the
// baseline stays reachable behind the gate.
func newRegistry(cfg *config.Config) *scanner.DefaultRegistry {
	reg := scanner.NewDefaultRegistry(func() scanner.Strategy {
		return clamav.New(clamav.Config{
			Exe:            cfg.ClamscanPath,
			Args:           cfg.ClamscanArgs,
			Timeout:        cfg.Timeout,
			BenignPrefixes: cfg.StderrIgnorePrefixes,
		})
	})

	if len(cfg.ExcludeGlobs) > 0 {
		reg.Override(func(prev scanner.Strategy) scanner.Strategy {
			return scanner.NewGlobGate(cfg.ExcludeGlobs, prev)
		})
	}

	return reg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&clamscanFlag, "clamscan", "clamscan", "clamscan binary name or path")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "output format: table, json, markdown")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVarP(&concurrencyFlag, "concurrency", "c", 4, "max concurrent scans")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 60*time.Second, "per-file scan timeout")
	rootCmd.PersistentFlags().StringSliceVar(&excludeFlag, "exclude", nil, "file-name globs resolved clean without scanning")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
