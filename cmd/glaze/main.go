package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glaze",
		Short: "Server-driven toast notifications for Go web UIs",
		Long: `Glaze coordinates toast notifications for server-driven web UIs.

One controller per process decides which toast request is displayed,
queued, or dropped; the lifecycle state machine runs on the server and
streams animation steps to a thin browser client over WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
