// maint.go implements "sift stats" and "sift compact".

package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/progress"
	"github.com/spf13/cobra"
)

func (e *Extension) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Long:  `Show the number of collections and records, the database size, and the largest collection.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			st, err := e.svc.Stats(c.Context())
			log.Event("core:stats", "stats").Author(cmd.Author()).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("stats: %w", err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(st)
			}
			return format.Stats(cmd.Out(), st)
		},
	}
}

func (e *Extension) newCompactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compact",
		Short: "Checkpoint and rebuild the database file",
		Long: `Flush the write-ahead log and rebuild the database, returning space
left by dropped collections to the filesystem.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			before := fileSize(e.svc.DBPath())

			err := progress.NewSpinner("Compacting").Run(c.Context(), e.svc.Compact)
			after := fileSize(e.svc.DBPath())

			log.Event("core:compact", "compact").
				Author(cmd.Author()).
				Detail("before", before).
				Detail("after", after).
				Write(err)

			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("compact: %w", err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(map[string]int64{"before": before, "after": after})
			}
			fmt.Fprintf(cmd.Out(), "Compacted %s: %d -> %d bytes\n", filepath.Base(e.svc.DBPath()), before, after)
			return nil
		},
	}
}

// fileSize returns the size of the database file plus its WAL, or 0.
func fileSize(path string) int64 {
	var n int64
	for _, p := range []string{path, path + "-wal"} {
		if fi, err := os.Stat(p); err == nil {
			n += fi.Size()
		}
	}
	return n
}
