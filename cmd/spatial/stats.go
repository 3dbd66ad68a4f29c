package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docfield/spatial"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a page's word spacing statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := loadWords()
		if err != nil {
			return err
		}

		stats, err := spatial.New(cliConfig.Options()...).WordSpacingStats(words)
		if err != nil {
			return err
		}

		fmt.Printf("Average spacing: %.2f\n", stats.AvgSpacing)
		fmt.Printf("Median spacing:  %.2f\n", stats.MedianSpacing)
		fmt.Printf("Spacing std dev: %.2f\n", stats.SpacingStd)
		fmt.Printf("Samples:         %d\n", stats.SampleCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
