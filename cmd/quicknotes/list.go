package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer store.Close(context.Background())

		notes := store.List()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		selected, hasSelection := store.Selected()
		for _, note := range notes {
			marker := " "
			if hasSelection && note.ID == selected.ID {
				marker = "*"
			}
			updated := time.UnixMilli(note.UpdatedAt).Format("2006-01-02 15:04")
			fmt.Printf("%s %s  %s  %s\n", marker, note.ID, updated, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
