package extension

import (
	"database/sql"
	"slices"
	"testing"

	"github.com/jpl-au/sift/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }
func (e testExtension) MCPTools() []MCPTool        { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	assert.Panics(t, func() { Register(testExtension{name: name}) })
}

func TestRegistry_Order(t *testing.T) {
	Register(testExtension{name: "test-order-b"})
	Register(testExtension{name: "test-order-a"})

	names := Names()
	b := slices.Index(names, "test-order-b")
	a := slices.Index(names, "test-order-a")
	assert.True(t, b >= 0 && a > b, "registration order is preserved: %v", names)

	assert.Equal(t, "test-order-a", Get("test-order-a").Name())
	assert.Nil(t, Get("test-order-missing"))
	assert.Len(t, All(), len(names))
}

func TestEvents(t *testing.T) {
	var e Event = ImportEvent{Collection: "people", Count: 3}
	assert.Equal(t, EventCollectionImport, e.EventType())
	assert.Equal(t, "people", e.EventCollection())

	e = DropEvent{Collection: "people"}
	assert.Equal(t, EventCollectionDrop, e.EventType())
}

func TestContext(t *testing.T) {
	cfg := &config.Config{}
	ctx := NewContext(nil, (*sql.DB)(nil), cfg)
	assert.Same(t, cfg, ctx.Config())
	assert.Nil(t, ctx.Service())
	assert.Nil(t, ctx.DB())
}
