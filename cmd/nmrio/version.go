package main

import (
	"fmt"
	"strings"

	"github.com/spectrakit/nmrio"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nmrio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nmrio version %s\n", strings.TrimSpace(nmrio.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
