package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quicknotes/quicknotes/pkg/core"
	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long: `Edit the title and/or content of a note. The note is selected first:
only the currently selected note can be mutated.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		if editTitle == "" && !cmd.Flags().Changed("title") &&
			editContent == "" && !cmd.Flags().Changed("content") {
			fmt.Println("Error: at least one of --title or --content is required")
			cmd.Usage()
			os.Exit(1)
		}

		store, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer store.Close(context.Background())

		if selected := store.Select(id); selected.ID != id {
			fatal("Note not found", fmt.Errorf("no note with id %s", id))
		}

		patch := core.Patch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &editContent
		}

		if !store.Update(id, patch) {
			fatal("Failed to update note", fmt.Errorf("note %s is not selected", id))
		}

		note, _ := store.Selected()
		fmt.Printf("Updated note %s (%s)\n", note.ID, note.Title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
}
