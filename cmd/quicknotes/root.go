package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quicknotes/quicknotes"
	"github.com/quicknotes/quicknotes/internal/platform"
	"github.com/quicknotes/quicknotes/pkg/adapters/localfile"
	"github.com/quicknotes/quicknotes/pkg/core"
)

var (
	verbose  bool
	storeDir string
	storeKey string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quicknotes",
	Short: "A local-first note store with debounced persistence",
	Long: `quicknotes keeps short text notes in a single durable JSON file.
Edits are held in memory and flushed after a quiet window, so bursts of
changes produce one write. Backups can be exported and merged back in
with last-writer-wins per note.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeDir, "dir", "", "Store directory (default: discovered upwards, then CWD)")
	rootCmd.PersistentFlags().StringVar(&storeKey, "key", "", "Durable slot filename (default "+localfile.DefaultKey+")")
}

// openStore resolves the store location (flags > quicknotes.yaml > upward
// discovery > CWD) and loads the collection. Callers must Close the store to
// force the final flush.
func openStore() (*core.Store, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := platform.LoadConfig(filepath.Join(wd, platform.ConfigFilename))
	if err != nil {
		return nil, err
	}

	dir := storeDir
	if dir == "" {
		dir = cfg.Dir
	}

	key := storeKey
	if key == "" {
		key = cfg.Key
	}
	if key == "" {
		key = localfile.DefaultKey
	}

	if dir == "" {
		if root, err := quicknotes.FindStoreRoot(wd, key); err == nil {
			dir = root
		} else {
			dir = wd
		}
	}

	return quicknotes.New(dir,
		quicknotes.WithKey(key),
		quicknotes.WithDebounce(cfg.Debounce()),
		quicknotes.WithLogger(slog.Default()),
	)
}
