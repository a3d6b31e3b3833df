// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tavern-api",
	Short: "Tavern API gRPC Server",
	Long:  `Tavern API provides the game-state and combat resolution backend for the tavern card-battle roguelike.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
