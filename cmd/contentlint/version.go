package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/contentlint"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of contentlint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "contentlint version %s\n", strings.TrimSpace(contentlint.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
