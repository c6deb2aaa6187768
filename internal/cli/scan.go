package cli

import (
	"fmt"

	"github.com/avgate/avgate/internal/output"
	"github.com/avgate/avgate/internal/scanner"
	"github.com/avgate/avgate/pkg/types"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <path>...",
	Short: "Scan files for infections",
	Long: `Scan one or more files with the configured scanning strategy and
report a clean/infected verdict per file. The command fails when any
file is infected or any scan errors — a scan error is never a verdict.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		p, err := types.ParsePath(arg)
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", arg, err)
		}
		paths = append(paths, p)
	}

	if verboseFlag {
		fmt.Fprintf(cmd.ErrOrStderr(), "scanning %d file(s) with %s\n", len(paths), appConfig.ClamscanPath)
	}

	reg := newRegistry(appConfig)
	reports := scanner.NewRunner(reg, concurrencyFlag).RunAll(cmd.Context(), paths)

	formatter, err := output.GetFormatter(outputFlag)
	if err != nil {
		return err
	}
	if err := formatter.Format(cmd.OutOrStdout(), reports); err != nil {
		return err
	}

	var infected, failed int
	for _, r := range reports {
		switch {
		case r.Error != "":
			failed++
		case r.Verdict != nil && r.Verdict.Infected:
			infected++
		}
	}
	if infected > 0 || failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d infected, %d failed of %d scanned", infected, failed, len(reports))
	}
	return nil
}
