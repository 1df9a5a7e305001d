package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/iterlab"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of iterlab",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "iterlab version %s\n", strings.TrimSpace(iterlab.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
