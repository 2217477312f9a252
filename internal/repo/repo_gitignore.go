// repo_gitignore.go manages .sift/.gitignore.
//
// Databases are committed by default so a team shares its collections.
// "sift init --local" lists the database in .gitignore under a header
// instead. Existing content is preserved; only database lines are added.

package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	localDBHeader = "# Local databases (not committed)"

	defaultGitignore = `# sift - ignore local config and SQLite side files
config.yaml
*.db-wal
*.db-shm
`
)

// writeGitignore creates .sift/.gitignore on first init only, so entries
// added for local databases survive later inits.
func writeGitignore(siftDir string) error {
	p := filepath.Join(siftDir, ".gitignore")
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		return nil
	}
	if err := os.WriteFile(p, []byte(defaultGitignore), 0644); err != nil {
		return fmt.Errorf("write gitignore: %w", err)
	}
	return nil
}

func gitignoreLines(p string) ([]string, error) {
	content, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines, nil
}

// IgnoreDB marks a database as local by listing it in the gitignore.
// An empty dir discovers the .sift directory.
func IgnoreDB(name, dir string) error {
	if dir == "" {
		var err error
		if dir, err = DiscoverDir(); err != nil {
			return err
		}
	}

	p := filepath.Join(dir, ".gitignore")
	lines, err := gitignoreLines(p)
	if err != nil {
		return err
	}
	file := DBFileName(name)
	if slices.Contains(lines, file) {
		return nil
	}

	var add strings.Builder
	if !slices.Contains(lines, localDBHeader) {
		add.WriteString("\n" + localDBHeader + "\n")
	}
	add.WriteString(file + "\n")

	f, err := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(add.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// IsIgnored reports whether a database is listed in the gitignore.
func IsIgnored(name, dir string) (bool, error) {
	if dir == "" {
		var err error
		if dir, err = DiscoverDir(); err != nil {
			return false, err
		}
	}
	lines, err := gitignoreLines(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return false, err
	}
	return slices.Contains(lines, DBFileName(name)), nil
}
