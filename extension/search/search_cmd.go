// search_cmd.go implements "sift search".

package search

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/records"
	"github.com/jpl-au/sift/internal/service"
	"github.com/jpl-au/sift/internal/validate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <collection> <pattern>...",
		Short: "Fuzzy search a collection",
		Long: `Fuzzy search a collection, or a record file with --file.

Every pattern must match as an ordered subsequence of a selected field.
Results are ranked best first: fewer skipped characters, then the earliest
matched character.

  sift search people gmail -f name,email
  sift search people rd -f name -i 0
  sift search --file people.json gmail oi -f name,email -F`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSearch,
	}
	f := c.Flags()
	f.StringP(extension.FlagFields, "f", "", "Fields to search, comma-separated (default: search.fields)")
	f.BoolP(extension.FlagCaseSensitive, "c", false, "Compare without lowercasing")
	f.BoolP(extension.FlagFieldMatching, "F", false, "All patterns must match within one field")
	f.IntP(extension.FlagMaxInsertions, "i", fuzzy.Unbounded, "Most characters a match may skip (-1 for no limit)")
	f.IntP(extension.FlagLimit, "n", 0, "Maximum results, 0 for all (default: search.limit)")
	f.Int(extension.FlagWorkers, 0, "Parallel search workers, 0 for one per CPU (default: search.workers)")
	f.Bool(extension.FlagRaw, false, "Print matching records as JSON lines")
	f.String(extension.FlagFile, "", "Search a record file instead of a collection")
	f.String(extension.FlagFormat, "", "Record file format (default: from extension)")
	f.String(extension.FlagRoot, "", "Path to the records inside the file, e.g. data.items")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	ctx := c.Context()
	file, _ := c.Flags().GetString(extension.FlagFile)

	cfg, err := config.Load()
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	req, err := buildRequest(c.Flags(), cfg)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	var (
		results []fuzzy.Result
		source  = file
	)
	if file != "" {
		req.Patterns = args
		results, err = searchFile(c, file, cfg, req)
	} else {
		if len(args) < 2 {
			return cmd.PrintJSONError(fmt.Errorf("search needs a collection and at least one pattern"))
		}
		req.Collection, req.Patterns = args[0], args[1:]
		source = req.Collection
		if err = cmd.RequireStore(); err == nil {
			results, err = e.svc.Search(ctx, req)
		}
	}

	log.Event("search:search", "search").
		Author(cmd.Author()).
		Collection(req.Collection).
		Query(req.Patterns...).
		Results(len(results)).
		Detail("fields", req.Selector.String()).
		Detail("file", file).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search %s: %w", source, err))
	}

	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	switch {
	case cmd.JSON():
		if results == nil {
			results = []fuzzy.Result{}
		}
		return cmd.PrintJSON(results)
	case raw:
		enc := json.NewEncoder(cmd.Out())
		for _, r := range results {
			if err := enc.Encode(r.Record); err != nil {
				return err
			}
		}
		return nil
	case len(results) == 0:
		fmt.Fprintln(cmd.Out(), "No matches")
		return nil
	default:
		return format.Results(cmd.Out(), results, cmd.Styles())
	}
}

// buildRequest overlays changed flags onto the configured defaults.
func buildRequest(f *pflag.FlagSet, cfg *config.Config) (service.SearchRequest, error) {
	var ov fuzzy.Overrides
	if f.Changed(extension.FlagCaseSensitive) {
		v, _ := f.GetBool(extension.FlagCaseSensitive)
		ov.CaseSensitive = &v
	}
	if f.Changed(extension.FlagFieldMatching) {
		v, _ := f.GetBool(extension.FlagFieldMatching)
		ov.FieldMatching = &v
	}
	if f.Changed(extension.FlagMaxInsertions) {
		v, _ := f.GetInt(extension.FlagMaxInsertions)
		if v < fuzzy.Unbounded {
			return service.SearchRequest{}, fmt.Errorf("--%s must be -1 or more", extension.FlagMaxInsertions)
		}
		ov.MaxInsertions = &v
	}

	fields := cfg.Fields()
	if f.Changed(extension.FlagFields) {
		fields, _ = f.GetString(extension.FlagFields)
	}

	limit := cfg.Limit()
	if f.Changed(extension.FlagLimit) {
		limit, _ = f.GetInt(extension.FlagLimit)
	}
	workers := cfg.Workers()
	if f.Changed(extension.FlagWorkers) {
		workers, _ = f.GetInt(extension.FlagWorkers)
	}
	if limit < 0 || workers < 0 {
		return service.SearchRequest{}, fmt.Errorf("--%s and --%s must not be negative", extension.FlagLimit, extension.FlagWorkers)
	}

	return service.SearchRequest{
		Selector: fuzzy.ParseSelector(fields),
		Options:  cfg.SearchOptions().Merge(ov),
		Limit:    limit,
		Workers:  workers,
	}, nil
}

// searchFile loads a record file and searches it in memory.
func searchFile(c *cobra.Command, path string, cfg *config.Config, req service.SearchRequest) ([]fuzzy.Result, error) {
	formatName, _ := c.Flags().GetString(extension.FlagFormat)
	root, _ := c.Flags().GetString(extension.FlagRoot)

	var (
		fmtv records.Format
		err  error
	)
	if formatName != "" {
		fmtv, err = records.ParseFormat(formatName)
	} else {
		fmtv, err = records.DetectFormat(path)
	}
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if err := validate.Size(path, fi.Size(), cfg.MaxFileSize()); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := records.Load(f, fmtv, records.LoadOptions{Root: root, MaxRecords: cfg.MaxRecords()})
	if err != nil {
		return nil, err
	}
	return service.SearchRecords(c.Context(), recs, req)
}
