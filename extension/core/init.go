// init.go implements "sift init". Init creates the repository structure
// only; configuration is managed separately with "sift config".

package core

import (
	"errors"
	"fmt"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Initialise a new sift store",
		Long: `Creates a .sift/sift.db database in the current directory.

Use --db to create additional databases:
  sift init --db people    # creates .sift/sift-people.db

Use --dir to create in a different directory:
  sift init --dir /path/to/project    # creates /path/to/project/.sift/sift.db

Use --local to exclude from git:
  sift init --db scratch --local

Use --force to recreate an existing database. Its collections are lost.`,
		RunE: runInit,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark database as local (gitignored)")
	return c
}

func runInit(c *cobra.Command, _ []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	db, dir := cmd.DB(), cmd.Dir()

	// --local edits the current project's .gitignore, which is unrelated to
	// a database created elsewhere.
	if local && dir != "" {
		return cmd.PrintJSONError(errors.New("cannot use --local with --dir"))
	}

	path, err := repo.Init(repo.InitOptions{
		Force: cmd.Force(),
		DB:    db,
		Local: local,
		Dir:   dir,
	})

	log.Event("core:init", "init").
		Author(cmd.Author()).
		Detail("db", db).
		Detail("dir", dir).
		Detail("local", local).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"path": path, "local": local})
	}
	fmt.Fprintf(cmd.Out(), "Initialised sift store in %s\n", path)
	return nil
}
