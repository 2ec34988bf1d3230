package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spectrakit/nmrio"
	"github.com/spf13/cobra"
)

var (
	infoJSON bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show summary statistics for a spectral dataset",
	Long:  `Decode a data file and print its shape, value range, mean, standard deviation and axis ranges.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := nmrio.New(
			nmrio.WithLogger(slog.Default()),
			nmrio.WithSyntheticNative(synthetic),
		)
		if err != nil {
			fatal("Error initializing nmrio", err)
		}

		rec, err := svc.Load(args[0])
		if err != nil {
			fatal("Error loading data", err)
		}

		info, err := svc.Info(rec)
		if err != nil {
			fatal("Error computing statistics", err)
		}

		if infoJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(info); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Printf("shape:    %d x %d\n", info.Shape[0], info.Shape[1])
		fmt.Printf("dtype:    %s\n", info.DType)
		fmt.Printf("values:   min %g, max %g, mean %g, std %g\n", info.Min, info.Max, info.Mean, info.Std)
		fmt.Printf("axis f1:  %g .. %g\n", info.RangeF1[0], info.RangeF1[1])
		fmt.Printf("axis f2:  %g .. %g\n", info.RangeF2[0], info.RangeF2[1])
		if len(info.Metadata) > 0 {
			fmt.Println("metadata:")
			for k, v := range info.Metadata {
				fmt.Printf("  %s: %v\n", k, v)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
}
