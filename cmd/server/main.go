// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardastika-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "cardastika-api",
	Short: "Cardastika equipment gRPC server",
	Long:  `Cardastika API serves the equipment, artifact and forge rules over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
