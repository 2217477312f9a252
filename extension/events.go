// events.go defines the event types for extension notifications.
//
// Events let extensions react to collection changes without modifying core
// logic. They are fire-and-forget notifications sent after the change has
// committed; extensions cannot veto an operation through them.

package extension

// EventType identifies the kind of event.
type EventType string

const (
	EventCollectionImport EventType = "collection:import"
	EventCollectionDrop   EventType = "collection:drop"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
	EventCollection() string
}

// ImportEvent is fired after records are written to a collection.
type ImportEvent struct {
	Collection string
	Count      int  // records written
	Created    bool // the import created the collection
	Replaced   bool // existing records were replaced
	Author     string
}

func (e ImportEvent) EventType() EventType    { return EventCollectionImport }
func (e ImportEvent) EventCollection() string { return e.Collection }

// DropEvent is fired after a collection is removed.
type DropEvent struct {
	Collection string
}

func (e DropEvent) EventType() EventType    { return EventCollectionDrop }
func (e DropEvent) EventCollection() string { return e.Collection }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}
