package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"langtour/internal/logging"
)

// watchDebounce coalesces the bursts of write events editors emit on save.
const watchDebounce = 300 * time.Millisecond

// watchCmd re-runs the configured sections whenever the config file changes.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the tour when the config file changes",
	Long: `Runs the configured sections once, then watches the config file and
re-runs on every change until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runTour(cmd, nil); err != nil {
			return err
		}
		return watchConfig(ctx, cmd)
	},
}

// watchConfig blocks until ctx is done, re-running the tour after each
// config change. The parent directory is watched because editors replace
// files on save, which drops a watch on the file itself.
func watchConfig(ctx context.Context, cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(configPath)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logger.Info("watching for config changes", zap.String("path", configPath))
	logging.Watch("watching %s", configPath)

	target := filepath.Clean(configPath)
	var lastRun time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastRun) < watchDebounce {
				continue
			}
			lastRun = time.Now()

			logging.Watch("config changed (%s), re-running", event.Op)
			fmt.Fprintln(os.Stdout)
			if err := runTour(cmd, nil); err != nil {
				// Keep watching; a broken config edit shouldn't kill the loop.
				fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
