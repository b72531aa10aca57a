// Package cmd provides the command-line interface for lampsim.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "lampsim",
	Short: "Lampsim simulates polled device behaviors on a cooperative " +
		"frame executive.",
	Long: `Lampsim simulates polled device behaviors on a cooperative ` +
		`frame executive. Currently, it supports running scripted ` +
		`button-flash sessions in virtual time.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Flag defaults can be supplied through a .env file.
func Execute() {
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
