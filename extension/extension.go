// Package extension provides the plugin architecture for sift. Extensions
// bundle related commands and MCP tools and register at init time, so
// features are added without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for sift extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup (migrations, etc).
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Storeless is an optional interface for extensions with commands that
// don't require a store. Commands returned by NoStoreCommands() will
// not trigger store initialisation in PersistentPreRunE.
//
// Examples are bootstrap commands such as init, and commands that can work
// on plain files, such as explain.
type Storeless interface {
	NoStoreCommands() []string
}
