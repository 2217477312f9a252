// Package repo provides repository initialisation and discovery for sift.
//
// A sift repository is a .sift directory holding one or more SQLite
// databases (sift.db, sift-<name>.db). Discovery mirrors git: starting from
// the current directory, walk up until a .sift directory containing the
// target database is found, or the filesystem root is reached.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/sift/internal/store"
)

const (
	// Dir is the directory name for the sift repository.
	Dir = ".sift"
	// DBFile is the default database filename.
	DBFile = "sift.db"

	dbPrefix = "sift-"
)

// ErrNotInitialised is returned when no sift repository is found.
var ErrNotInitialised = errors.New("sift not initialised (run 'sift init')")

// DBFileName returns the database filename for a given name.
//
//	""       -> sift.db
//	"crm"    -> sift-crm.db
//	"x.db"   -> x.db
func DBFileName(name string) string {
	switch {
	case name == "":
		return DBFile
	case strings.HasSuffix(name, ".db"):
		return name
	default:
		return dbPrefix + name + ".db"
	}
}

// InitOptions configures repository initialisation.
type InitOptions struct {
	Force bool   // remove and recreate an existing database
	DB    string // database name, empty for sift.db
	Local bool   // keep the database out of git
	Dir   string // parent of .sift, empty for the current directory
}

// Init creates .sift/ and an initialised database inside it. Config is not
// written here; "sift config" manages it separately.
func Init(opts InitOptions) (string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	siftDir := filepath.Join(dir, Dir)
	dbPath := filepath.Join(siftDir, DBFileName(opts.DB))

	if _, err := os.Stat(dbPath); err == nil {
		if !opts.Force {
			return "", fmt.Errorf("database %s already exists (use --force to reinitialise)", DBFileName(opts.DB))
		}
		for _, suffix := range []string{"", "-wal", "-shm"} {
			if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
				return "", fmt.Errorf("remove database: %w", err)
			}
		}
	}

	if err := os.MkdirAll(siftDir, 0755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("open store: %w", err)
	}
	defer s.Close()
	if err := s.Init(); err != nil {
		return "", fmt.Errorf("init store: %w", err)
	}

	if err := writeGitignore(siftDir); err != nil {
		return "", err
	}
	if opts.Local {
		if err := IgnoreDB(opts.DB, siftDir); err != nil {
			return "", fmt.Errorf("ignore database: %w", err)
		}
	}
	return dbPath, nil
}

// Discover walks up the directory tree looking for a .sift database and
// returns its full path.
func Discover(db string) (string, error) {
	file := DBFileName(db)
	return walkUp(func(dir string) (string, bool) {
		p := filepath.Join(dir, Dir, file)
		_, err := os.Stat(p)
		return p, err == nil
	})
}

// DiscoverDir finds the nearest .sift directory.
func DiscoverDir() (string, error) {
	return walkUp(func(dir string) (string, bool) {
		p := filepath.Join(dir, Dir)
		info, err := os.Stat(p)
		return p, err == nil && info.IsDir()
	})
}

func walkUp(found func(dir string) (string, bool)) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for {
		if p, ok := found(dir); ok {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInitialised
		}
		dir = parent
	}
}

// DBInfo holds database metadata.
type DBInfo struct {
	Name  string `json:"name"`  // Short name (empty for sift.db)
	File  string `json:"file"`  // Filename
	Path  string `json:"path"`  // Full path
	Local bool   `json:"local"` // True if gitignored
}

// ListDBs returns all sift databases in dir. An empty dir discovers the
// .sift directory from the working directory.
func ListDBs(dir string) ([]DBInfo, error) {
	if dir == "" {
		var err error
		if dir, err = DiscoverDir(); err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Dir, err)
	}

	var dbs []DBInfo
	for _, e := range entries {
		name, ok := dbName(e.Name())
		if !ok {
			continue
		}
		local, err := IsIgnored(name, dir)
		if err != nil {
			local = false
		}
		dbs = append(dbs, DBInfo{
			Name:  name,
			File:  e.Name(),
			Path:  filepath.Join(dir, e.Name()),
			Local: local,
		})
	}
	return dbs, nil
}

// dbName inverts DBFileName for files sift created.
func dbName(file string) (string, bool) {
	if file == DBFile {
		return "", true
	}
	if strings.HasPrefix(file, dbPrefix) && strings.HasSuffix(file, ".db") {
		return strings.TrimSuffix(strings.TrimPrefix(file, dbPrefix), ".db"), true
	}
	return "", false
}
