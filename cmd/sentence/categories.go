package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jay870423/one-sentence/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the active category vocabulary",
		Long: `Show the categories the extractor chooses from. Override the set with the
"categories" list in the config file.`,
		Run: func(_ *cobra.Command, _ []string) {
			cats := activeCategories()
			if cats == nil {
				cats = model.DefaultCategories
			}
			for _, c := range cats {
				fmt.Println(c)
			}
		},
	}
}
