package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("creates store", func(t *testing.T) {
		env := newBareEnv(t)
		out := env.run("init")
		env.contains(out, "Initialised sift store")
		assert.FileExists(t, filepath.Join(env.dir, ".sift", "sift.db"))
		assert.FileExists(t, filepath.Join(env.dir, ".sift", ".gitignore"))
	})

	t.Run("twice fails without force", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("init")
		require.Error(t, err)
		env.contains(out, "already exists")

		env.run("init", "--force")
	})

	t.Run("named local database", func(t *testing.T) {
		env := newBareEnv(t)
		env.run("init", "--db", "scratch", "--local")
		assert.FileExists(t, filepath.Join(env.dir, ".sift", "sift-scratch.db"))

		out := env.run("db")
		env.contains(out, "sift-scratch.db  local")

		out = env.run("db", "scratch")
		env.contains(out, "sift-scratch.db: local")
	})

	t.Run("local with dir rejected", func(t *testing.T) {
		env := newBareEnv(t)
		_, err := env.runErr("init", "--local", "--dir", t.TempDir())
		assert.Error(t, err)
	})

	t.Run("commands need a store", func(t *testing.T) {
		env := newBareEnv(t)
		out, err := env.runErr("ls")
		require.Error(t, err)
		env.contains(out, "not initialised")
	})
}

func TestDB(t *testing.T) {
	env := newTestEnv(t)
	env.run("init", "--db", "people")

	out := env.run("db")
	env.contains(out, "sift.db  shared")
	env.contains(out, "sift-people.db  shared")

	env.run("db", "people", "--local")
	out = env.run("db", "people")
	env.equals(out, "sift-people.db: local")
}
