package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dvdio",
	Short: "A tool for working with protected DVD-Video media dumps",
	Long: `dvdio reads, authenticates and decrypts structures dumped from
protected DVD-Video media: disc key blocks, title key records and
scrambled sectors.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
