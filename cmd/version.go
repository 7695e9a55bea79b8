package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosection/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosection",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosection v%s\n", version.Version)
		fmt.Println("Composable beam cross-section calculator")
		if verbose {
			fmt.Printf("Built %s from %s\n", version.BuildTime, version.GitCommit)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
