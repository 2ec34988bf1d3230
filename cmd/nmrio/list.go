package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spectrakit/nmrio"
	"github.com/spectrakit/nmrio/pkg/adapters/fs"
	"github.com/spf13/cobra"
)

var (
	listJSON    bool
	listPattern string
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List supported spectra files under a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		svc, err := nmrio.New()
		if err != nil {
			fatal("Error initializing nmrio", err)
		}

		paths, err := fs.Scan(root, listPattern, svc.Registry())
		if err != nil {
			fatal("Error scanning directory", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(paths); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, path := range paths {
			fmt.Println(path)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listPattern, "pattern", "", "Glob pattern relative to the directory (default matches everything)")
}
