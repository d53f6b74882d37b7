package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <kind> <name>",
		Short: "List the direct dependencies recorded for a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := c.app.Trace(graphFlag(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(lines) == 0 {
				_, _ = fmt.Fprintf(out, "%s(%s) has no dependencies\n", args[0], args[1])
				return nil
			}
			for _, line := range lines {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
