package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openjudge/arbiter/internal/config"
	"github.com/openjudge/arbiter/internal/sandbox"
	"github.com/openjudge/arbiter/internal/store"
)

// NewCleanCmd creates the clean command: reap stale workspaces left by
// crashed workers and prune old submission rows.
func NewCleanCmd() *cobra.Command {
	var (
		olderThan time.Duration
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stale workspaces and prune old submissions",
		Long: `Remove workspace directories older than the retention window from the
sandbox root, and delete submission rows past the same cutoff.

Live requests always clean their own workspace; this command only reaps
leftovers from crashed workers.`,
		Example: `  arbiter clean
  arbiter clean --older-than 1h
  arbiter clean --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			root := os.Getenv("CONTAINER_SANDBOX_ROOT")
			if root == "" {
				root = sandbox.DefaultContainerRoot
			}

			cutoff := time.Now().Add(-olderThan)
			stale, err := sandbox.ListStale(root, cutoff.UnixNano())
			if err != nil {
				return fmt.Errorf("failed to scan %s: %w", root, err)
			}

			for _, dir := range stale {
				if dryRun {
					fmt.Printf("would remove %s\n", dir)
					continue
				}
				if err := os.RemoveAll(dir); err != nil {
					fmt.Fprintf(os.Stderr, "failed to remove %s: %v\n", dir, err)
					continue
				}
				fmt.Printf("removed %s\n", dir)
			}

			if dryRun {
				return nil
			}

			submissions, err := store.NewStore(cfg.Runtime.DBPath)
			if err != nil {
				// No database yet is not a cleaning failure.
				return nil
			}
			defer submissions.Close()

			pruned, err := submissions.DeleteOlderThan(cutoff)
			if err != nil {
				return err
			}
			if pruned > 0 {
				fmt.Printf("pruned %d submission(s)\n", pruned)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "Retention window")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed")

	return cmd
}
