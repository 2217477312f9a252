// ls.go implements "sift ls".

package collection

import (
	"fmt"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/store"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls",
		Short: "List collections",
		Long: `List collections.

  sift ls       # names
  sift ls -l    # names, record counts, descriptions and update times`,
		Args: cobra.NoArgs,
		RunE: e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format")
	return c
}

func (e *Extension) runLs(c *cobra.Command, _ []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)

	cols, err := e.svc.ListCollections(c.Context())

	log.Event("collection:ls", "list").Author(cmd.Author()).Results(len(cols)).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
	}

	if cmd.JSON() {
		items := make([]store.CollectionJSON, len(cols))
		for i := range cols {
			items[i] = cols[i].ToJSON()
		}
		return cmd.PrintJSON(items)
	}
	if long {
		return format.CollectionsLong(cmd.Out(), cols, cmd.Styles())
	}
	return format.Collections(cmd.Out(), cols)
}
