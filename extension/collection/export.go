// export.go implements "sift export", writing a collection's records as
// JSON lines in import order.

package collection

import (
	"bufio"
	"fmt"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/records"
	"github.com/spf13/cobra"
)

// PositionKey is the field --position adds to exported records.
const PositionKey = "_position"

func (e *Extension) newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export <collection>",
		Short: "Write a collection's records as JSON lines",
		Long: `Write a collection's records to stdout as JSON lines, in import order.
The output can be imported again with --format jsonl.

  sift export people > people.jsonl
  sift export people --position -n 10`,
		Args: cobra.ExactArgs(1),
		RunE: e.runExport,
	}
	c.Flags().Bool(extension.FlagPosition, false, "Add each record's zero-based position as "+PositionKey)
	c.Flags().IntP(extension.FlagLimit, "n", 0, "Export at most n records (0 for all)")
	return c
}

func (e *Extension) runExport(c *cobra.Command, args []string) error {
	name := args[0]
	position, _ := c.Flags().GetBool(extension.FlagPosition)
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	if limit < 0 {
		return cmd.PrintJSONError(fmt.Errorf("--%s must not be negative", extension.FlagLimit))
	}

	recs, err := e.svc.Records(c.Context(), name, limit)

	log.Event("collection:export", "export").
		Author(cmd.Author()).
		Collection(name).
		Results(len(recs)).
		Detail("position", position).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("export %s: %w", name, err))
	}

	w := bufio.NewWriter(cmd.Out())
	for i, r := range recs {
		data, err := records.Encode(r)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("export %s: record %d: %w", name, i, err))
		}
		if position {
			if data, err = records.Annotate(data, PositionKey, i); err != nil {
				return cmd.PrintJSONError(fmt.Errorf("export %s: record %d: %w", name, i, err))
			}
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return w.Flush()
}
