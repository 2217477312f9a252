// rm.go implements "sift rm". Dropping is permanent, so it asks for
// confirmation on a terminal unless --force is given.

package collection

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <collection>...",
		Short: "Delete collections",
		Long: `Delete collections and all of their records. This cannot be undone.

Run 'sift compact' afterwards to return the space to the filesystem.
Use --force to skip the confirmation prompt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runRm,
	}
}

func (e *Extension) runRm(c *cobra.Command, args []string) error {
	if !cmd.Force() && !cmd.JSON() && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Delete %s? [y/N] ", strings.Join(args, ", "))
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.Out(), "Aborted")
			return nil
		}
	}

	var dropped []string
	for _, name := range args {
		err := e.svc.DropCollection(c.Context(), name)
		log.Event("collection:rm", "drop").Author(cmd.Author()).Collection(name).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("rm %s: %w", name, err))
		}
		dropped = append(dropped, name)
		if !cmd.JSON() {
			fmt.Fprintf(cmd.Out(), "Dropped %s\n", name)
		}
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"dropped": dropped})
	}
	return nil
}
