package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the previous session's dependency graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Stats(graphFlag(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "nodes: %d\n", stats.Nodes)
			_, _ = fmt.Fprintf(out, "edges: %d\n", stats.Edges)

			states := make([]string, 0, len(stats.States))
			for state := range stats.States {
				states = append(states, state)
			}
			sort.Strings(states)
			for _, state := range states {
				_, _ = fmt.Fprintf(out, "%s: %d\n", state, stats.States[state])
			}
			return nil
		},
	}
}
