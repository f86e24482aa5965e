package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Merge a backup file into the collection",
	Long: `Import reconciles the notes in a backup file with the current
collection: per id, the most recently updated variant wins. A malformed
backup aborts with no change.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Failed to read backup", err)
		}

		store, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer store.Close(context.Background())

		before := store.Len()
		if err := store.ImportJSON(data); err != nil {
			fatal("Import aborted", err)
		}

		fmt.Printf("Merged %s: %d notes before, %d after\n", args[0], before, store.Len())
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
