package main

import (
	"context"
	"fmt"

	"github.com/quicknotes/quicknotes/pkg/core"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all notes to a backup file",
	Long: `Export serializes the full collection as pretty-printed JSON.
The artifact can later be merged back with 'quicknotes import'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer store.Close(context.Background())

		path := exportOut
		if path == "" {
			path = core.BackupFilename
		}

		if err := store.WriteBackup(path); err != nil {
			fatal("Failed to write backup", err)
		}

		fmt.Printf("Exported %d notes to %s\n", store.Len(), path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Backup file path (default "+core.BackupFilename+")")
}
