// The cmd package tests exercise the full stack through the built binary:
// command parsing -> extension -> collection service -> store -> SQLite.
// Each test gets its own working directory and HOME, so neither the global
// config nor the audit log of the machine running the tests is touched.

package cmd

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the sift binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "sift-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "sift"
		if os.PathSeparator == '\\' {
			binaryName = "sift.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary directory with an initialised sift store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newBareEnv(t)
	env.run("init")
	return env
}

// newBareEnv creates the environment without running init.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"SIFT_DB=",
		"SIFT_DIR=",
	)
	return cmd
}

// run executes sift with the given args and returns its output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("sift %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes sift and returns its output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// runStdin executes sift with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	cmd := e.command(args...)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("sift %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// stdout executes sift and returns stdout only, for JSON decoding.
func (e *testEnv) stdout(args ...string) []byte {
	e.t.Helper()
	out, err := e.command(args...).Output()
	if err != nil {
		e.t.Fatalf("sift %v failed: %v", args, err)
	}
	return out
}

// write creates a file in the test directory and returns its path.
func (e *testEnv) write(name, content string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
	return p
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// importPeople loads the five-person fixture into the "people" collection.
func (e *testEnv) importPeople() {
	e.t.Helper()
	e.run("import", "people", e.write("people.json", peopleJSON))
}

// searchIDs runs a JSON search and returns the "id" of each result in rank
// order.
func (e *testEnv) searchIDs(args ...string) []int {
	e.t.Helper()
	out := e.stdout(append([]string{"search", "-o", "json"}, args...)...)
	var results []struct {
		Entry struct {
			ID int `json:"id"`
		} `json:"entry"`
	}
	require.NoError(e.t, json.Unmarshal(out, &results), string(out))
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.Entry.ID
	}
	return ids
}

const peopleJSON = `[
  {"id": 0, "name": "Robin David", "email": "robin.david@gmail.com"},
  {"id": 1, "name": "Loris Francois", "email": "loris.francois@gmail.com"},
  {"id": 2, "name": "Armand Roy", "email": "armand.roy@live.com"},
  {"id": 3, "name": "Mathias Meunier", "email": "mathias.meunier@gmail.com"},
  {"id": 4, "name": "Ruben Bernard", "email": "ruben.bernard@yahoo.com"}
]`
