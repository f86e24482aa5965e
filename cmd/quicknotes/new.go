package main

import (
	"context"
	"fmt"

	"github.com/quicknotes/quicknotes/pkg/core"
	"github.com/spf13/cobra"
)

var (
	newTitle   string
	newContent string
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a fresh note. Without flags it starts as an "Untitled" empty note.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer store.Close(context.Background())

		note, err := store.Create()
		if err != nil {
			fatal("Failed to create note", err)
		}

		if newTitle != "" || newContent != "" {
			patch := core.Patch{}
			if newTitle != "" {
				patch.Title = &newTitle
			}
			if newContent != "" {
				patch.Content = &newContent
			}
			store.Update(note.ID, patch)
			note, _ = store.Selected()
		}

		fmt.Printf("Created note %s (%s)\n", note.ID, note.Title)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content")
}
