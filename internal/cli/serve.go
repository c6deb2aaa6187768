package cli

import (
	"fmt"

	"github.com/avgate/avgate/internal/web"
	"github.com/spf13/cobra"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the avgate HTTP API",
	Long:  "Exposes the scan verdict API over HTTP for other services to call.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":8940", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	reg := newRegistry(appConfig)

	s := web.NewServer(addrFlag, reg)
	fmt.Fprintf(cmd.OutOrStdout(), "avgate API listening on %s\n", addrFlag)
	return s.Start()
}
