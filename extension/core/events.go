// events.go checkpoints the WAL after bulk changes, so sift.db itself holds
// large imports, replacements and drops rather than the -wal file.

package core

import (
	"context"

	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/log"
)

// checkpointAfter is the import size that triggers a WAL checkpoint.
const checkpointAfter = 10000

var _ extension.EventHandler = (*Extension)(nil)

// HandleEvent checkpoints the WAL after drops, replacements and imports of
// at least checkpointAfter records. Smaller imports are left to SQLite.
func (e *Extension) HandleEvent(ctx extension.Context, evt extension.Event) error {
	switch ev := evt.(type) {
	case extension.ImportEvent:
		if !ev.Replaced && ev.Count < checkpointAfter {
			return nil
		}
	case extension.DropEvent:
	default:
		return nil
	}

	svc := ctx.Service()
	if svc == nil {
		return nil
	}
	err := svc.Checkpoint(context.Background())
	log.Event("core:checkpoint", "checkpoint").
		Collection(evt.EventCollection()).
		Detail("event", string(evt.EventType())).
		Write(err)
	return err
}
