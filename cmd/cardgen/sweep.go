package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardgen/internal/config"
	"github.com/KirkDiggler/cardgen/internal/pkg/clock"
	"github.com/KirkDiggler/cardgen/internal/repositories/artifacts"
)

var sweepDryRun bool

var sweepCmd = &cobra.Command{
	Use:   "sweep-exports",
	Short: "Remove expired or unreadable export artifacts from Redis",
	Long: `Scan the export artifacts stored in Redis and delete the ones that no longer
decode, have no TTL or are past their expiry. Requires REDIS_URL.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().BoolVar(&sweepDryRun, "dry-run", false, "report stale artifacts without deleting them")
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.RedisURL == "" {
		return fmt.Errorf("%s is required to sweep exports", config.EnvRedisURL)
	}

	setupLogging(os.Stderr, cfg.LogLevel, false)

	a := &app{}
	defer func() {
		for _, c := range a.closers {
			_ = c.Close()
		}
	}()

	repo, err := newArtifactRepository(cmd.Context(), cfg, clock.New(), a)
	if err != nil {
		return err
	}

	return sweepExports(cmd.Context(), repo, sweepDryRun, cmd.OutOrStdout())
}

func sweepExports(ctx context.Context, repo artifacts.Repository, dryRun bool, w io.Writer) error {
	out, err := repo.Sweep(ctx, &artifacts.SweepInput{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("failed to sweep exports: %w", err)
	}

	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	fmt.Fprintf(w, "Checked %d export artifacts\n", out.Checked)
	fmt.Fprintf(w, "%s %d stale artifacts\n", verb, len(out.Stale))
	for _, id := range out.Stale {
		fmt.Fprintf(w, "  %s\n", id)
	}
	return nil
}
