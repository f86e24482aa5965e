package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		store, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer store.Close(context.Background())

		note := store.Select(id)
		if note.ID != id {
			fatal("Note not found", fmt.Errorf("no note with id %s", id))
		}

		fmt.Printf("%s\n", note.Title)
		fmt.Printf("id: %s  updated: %s\n\n", note.ID, time.UnixMilli(note.UpdatedAt).Format(time.RFC3339))
		fmt.Println(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
