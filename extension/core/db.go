// db.go implements "sift db", listing the databases in .sift/ and marking
// them local (gitignored). It never opens a database, so it works on files
// that are locked or damaged.

package core

import (
	"fmt"
	"path/filepath"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/repo"
	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "db [name]",
		Short: "List databases or mark one local",
		Long: `List databases or change their local status.

  sift db                    # list all databases
  sift db people             # show whether sift-people.db is local
  sift db people --local     # stop committing sift-people.db

Local databases are gitignored. Shared databases are committed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDB,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark database as local")
	return c
}

func runDB(c *cobra.Command, args []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)

	// repo functions take the .sift directory, not the project root.
	siftDir := ""
	if d := cmd.Dir(); d != "" {
		siftDir = filepath.Join(d, repo.Dir)
	}

	if len(args) == 0 && !local {
		dbs, err := repo.ListDBs(siftDir)
		log.Event("core:db", "list").Author(cmd.Author()).Results(len(dbs)).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("db list: %w", err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(dbs)
		}
		if len(dbs) == 0 {
			fmt.Fprintln(cmd.Out(), "No databases found")
			return nil
		}
		for _, db := range dbs {
			fmt.Fprintf(cmd.Out(), "%s  %s\n", db.File, status(db.Local))
		}
		return nil
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	if local {
		err := repo.IgnoreDB(name, siftDir)
		log.Event("core:db", "ignore").Author(cmd.Author()).Detail("db", name).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("db ignore %q: %w", name, err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]any{"file": repo.DBFileName(name), "local": true})
		}
		fmt.Fprintf(cmd.Out(), "%s marked as local\n", repo.DBFileName(name))
		return nil
	}

	ignored, err := repo.IsIgnored(name, siftDir)
	log.Event("core:db", "status").Author(cmd.Author()).Detail("db", name).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("db status %q: %w", name, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"file": repo.DBFileName(name), "local": ignored})
	}
	fmt.Fprintf(cmd.Out(), "%s: %s\n", repo.DBFileName(name), status(ignored))
	return nil
}

func status(local bool) string {
	if local {
		return "local"
	}
	return "shared"
}
