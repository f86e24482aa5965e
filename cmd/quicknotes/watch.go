package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/quicknotes/quicknotes"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Stream changes made to the store by other processes",
	Long: `Watch the durable note file and print one line per note that is
created, modified or deleted, until interrupted. The optional pattern filters
note IDs using glob syntax (default "*").`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}

		store, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer store.Close(context.Background())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		events, err := store.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Println("Watching for changes (Ctrl+C to stop)...")
		for event := range events {
			printEvent(event)
		}
	},
}

func printEvent(event quicknotes.Event) {
	at := time.Unix(event.Timestamp, 0).Format("15:04:05")
	fmt.Printf("%s  %-6s  %s\n", at, event.Type, event.ID)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
