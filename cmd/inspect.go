// File: cmd/inspect.go
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/cursortrace/internal/recording"
	"github.com/xkilldash9x/cursortrace/internal/trajectory"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <recording.json>",
	Short: "Print statistics about a recording and its precomputed trajectory.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := recording.Load(args[0])
		if err != nil {
			return err
		}

		moves, clicks := rec.Split()
		tuning := appConfig.Engine.Tuning()
		traj := trajectory.Build(rec, tuning)

		w := os.Stdout
		fmt.Fprintf(w, "recording:    %s\n", rec.ID)
		fmt.Fprintf(w, "duration:     %.1f ms\n", rec.DurationMs())
		fmt.Fprintf(w, "events:       %d (%d moves, %d clicks)\n", len(rec.Events), len(moves), len(clicks))
		fmt.Fprintf(w, "checkpoints:  %d (after densification)\n", len(traj.Checkpoints()))

		if len(rec.Glyphs) > 0 {
			ids := make([]string, 0, len(rec.Glyphs))
			for id := range rec.Glyphs {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			fmt.Fprintf(w, "glyphs:       %d\n", len(ids))
			for _, id := range ids {
				fmt.Fprintf(w, "  %s -> %s\n", id, rec.Glyphs[id])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
