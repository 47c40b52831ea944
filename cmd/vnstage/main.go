// Package main is the entry point for the VN stage CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vnstage",
	Short: "VN stage engine CLI",
	Long:  `vnstage drives the visual-novel portrait engine: manage the character roster, scan sprite folders, and play chat scripts against the stage.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(spritesCmd)
}
