package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docfield/spatial"
	"github.com/docfield/spatial/internal/logger"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Render a page as label:value text",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.WithComponent("format")

		words, err := loadWords()
		if err != nil {
			return err
		}
		log.Debug().Int("words", len(words)).Int("page", pageNum).Msg("Words loaded")

		text, err := spatial.New(cliConfig.Options()...).PreprocessDocument(words)
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
