// import.go implements "sift import".

package collection

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/progress"
	"github.com/jpl-au/sift/internal/records"
	"github.com/jpl-au/sift/internal/service"
	"github.com/jpl-au/sift/internal/validate"
	"github.com/spf13/cobra"
)

func (e *Extension) newImportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "import <collection> <file>...",
		Short: "Import records into a collection",
		Long: `Import records from JSON, JSON lines, YAML or TOML files.

The collection is created when missing. Records are appended unless
--replace is given. Use - to read stdin (requires --format).

  sift import people people.json
  sift import people a.yaml b.yaml --replace
  cat users.json | sift import users - --format json --root data`,
		Args: cobra.MinimumNArgs(2),
		RunE: e.runImport,
	}
	c.Flags().String(extension.FlagFormat, "", "Record format: json, jsonl, yaml, toml (default: from extension)")
	c.Flags().String(extension.FlagRoot, "", "Path to the records inside each document, e.g. data.items")
	c.Flags().Bool(extension.FlagReplace, false, "Replace the collection's records")
	c.Flags().String(extension.FlagDescription, "", "Description for a new collection")
	return c
}

func (e *Extension) runImport(c *cobra.Command, args []string) error {
	name, files := args[0], args[1:]
	formatName, _ := c.Flags().GetString(extension.FlagFormat)
	root, _ := c.Flags().GetString(extension.FlagRoot)
	replace, _ := c.Flags().GetBool(extension.FlagReplace)
	desc, _ := c.Flags().GetString(extension.FlagDescription)

	cfg, err := config.Load()
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	lopts := records.LoadOptions{Root: root, MaxRecords: cfg.MaxRecords()}

	var all []fuzzy.Record
	p := progress.New("Reading", len(files))
	for _, f := range files {
		recs, err := loadFile(f, formatName, cfg.MaxFileSize(), lopts)
		if err != nil {
			p.Done()
			log.Event("collection:import", "import").Author(cmd.Author()).Collection(name).Detail("file", f).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("import %s: %w", f, err))
		}
		all = append(all, recs...)
		p.Increment(len(recs))
		p.Print()
	}
	p.Done()

	n, err := e.svc.Import(c.Context(), name, all, service.ImportOptions{
		Replace:     replace,
		Description: desc,
		Author:      cmd.Author(),
	})

	log.Event("collection:import", "import").
		Author(cmd.Author()).
		Collection(name).
		Results(n).
		Detail("files", len(files)).
		Detail("replace", replace).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("import %s: %w", name, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"collection": name, "imported": n, "files": len(files), "replaced": replace})
	}
	fmt.Fprintf(cmd.Out(), "Imported %d records into %s\n", n, name)
	return nil
}

// loadFile decodes one input. "-" reads stdin and needs an explicit format.
func loadFile(path, formatName string, maxSize int64, opts records.LoadOptions) ([]fuzzy.Record, error) {
	var (
		f   records.Format
		err error
	)
	switch {
	case formatName != "":
		f, err = records.ParseFormat(formatName)
	case path == "-":
		err = errors.New("reading stdin needs --format")
	default:
		f, err = records.DetectFormat(path)
	}
	if err != nil {
		return nil, err
	}

	if path == "-" {
		var r io.Reader = os.Stdin
		if maxSize > 0 {
			// one byte past the limit so oversize input is detected
			r = io.LimitReader(os.Stdin, maxSize+1)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err := validate.Size("stdin", int64(len(data)), maxSize); err != nil {
			return nil, err
		}
		return records.Load(bytes.NewReader(data), f, opts)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if err := validate.Size(path, fi.Size(), maxSize); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return records.Load(file, f, opts)
}
