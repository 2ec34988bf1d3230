package main

import (
	"fmt"
	"strings"

	"github.com/spectrakit/nmrio"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := nmrio.New()
		if err != nil {
			fatal("Error initializing nmrio", err)
		}

		reg := svc.Registry()
		for _, name := range reg.Names() {
			format, err := reg.ByName(name)
			if err != nil {
				fatal("Error reading registry", err)
			}
			mode := "read/write"
			if format.Encoder == nil {
				mode = "read-only"
			}
			fmt.Printf("%-6s %-12s %s\n", name, strings.Join(format.Extensions, ","), mode)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
