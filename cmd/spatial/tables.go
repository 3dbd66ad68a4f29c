package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docfield/spatial"
	"github.com/docfield/spatial/export"
	"github.com/docfield/spatial/internal/logger"
)

var xlsxOut string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Detect table regions on a page",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.WithComponent("tables")

		words, err := loadWords()
		if err != nil {
			return err
		}

		regions, err := spatial.New(cliConfig.Options()...).IdentifyTableRegions(words)
		if err != nil {
			return err
		}
		log.Info().Int("regions", len(regions)).Msg("Table detection complete")

		for i, r := range regions {
			fmt.Printf("Table %d: %d rows x %d columns\n", i+1, r.RowCount, r.ColumnCount)
			fmt.Printf("  Headers: %s\n", strings.Join(r.Headers, " | "))
			for _, row := range r.Rows {
				fmt.Printf("  %s\n", strings.Join(row, " | "))
			}
		}

		if xlsxOut != "" {
			data, err := export.TablesXLSX(regions)
			if err != nil {
				return err
			}
			if err := os.WriteFile(xlsxOut, data, 0644); err != nil {
				return err
			}
			log.Info().Str("path", xlsxOut).Msg("Workbook written")
		}
		return nil
	},
}

func init() {
	tablesCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write detected tables to an XLSX workbook")
	rootCmd.AddCommand(tablesCmd)
}
