/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until the first
// command that needs the store runs. The collection service is created once
// and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/collection"
	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
)

// noStoreCommands lists commands that bypass automatic store initialisation.
// Built from bootstrap commands plus extension-declared storeless commands.
var noStoreCommands map[string]bool

// authorRequiredCommands lists commands that need attribution in the audit
// log before they run.
var authorRequiredCommands = map[string]bool{
	"rm": true,
}

// buildNoStoreCommands creates the set of commands that skip store
// initialisation: the bootstrap commands, and any command an extension
// declares through extension.Storeless.
func buildNoStoreCommands() map[string]bool {
	cmds := map[string]bool{
		"init":   true,
		"guide":  true,
		"config": true,
		"help":   true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Storeless); ok {
			for _, name := range s.NoStoreCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	extService *collection.Service
	initOnce   sync.Once
	initErr    error
)

// initExtensions opens the collection service once per process and injects
// it into every Initializable extension. repo.ErrNotInitialised is wrapped
// and returned so the user is told to run "sift init".
func initExtensions() error {
	initOnce.Do(func() {
		svc, err := collection.New(DB(), Dir())
		if err != nil {
			initErr = fmt.Errorf("opening database: %w", err)
			return
		}
		extService = svc

		log.SetProject(svc.Dir())

		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(svc, svc.DB(), cfg)
		svc.SetExtensionContext(extContext)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noStoreCommands = buildNoStoreCommands()
	})
}

// RequireStore opens the store for a storeless command that needs it for
// some invocations, such as search without --file. Safe to call repeatedly.
func RequireStore() error {
	return initExtensions()
}
