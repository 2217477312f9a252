// flags.go defines constants for all CLI flag names.
//
// Constants instead of string literals keep the Flags() definitions and
// the Get*() lookups in sync.
//
// Naming convention: Flag<PascalCaseName> for the kebab-case CLI flag
// (e.g., "case-sensitive" -> FlagCaseSensitive).

package extension

const (
	// Boolean flags

	FlagCaseSensitive = "case-sensitive" // Compare characters exactly
	FlagFieldMatching = "field-matching" // Every pattern must match one field
	FlagLocal         = "local"          // Use local scope (gitignored)
	FlagLong          = "long"           // Long format output
	FlagPosition      = "position"       // Add _position to exported records
	FlagRaw           = "raw"            // Raw output without formatting
	FlagReplace       = "replace"        // Replace existing records on import

	// String flags

	FlagDescription = "description" // Collection description
	FlagFields      = "fields"      // Field selector (e.g., "name.last,email")
	FlagFile        = "file"        // Search a record file instead of a collection
	FlagFormat      = "format"      // Record file format
	FlagRoot        = "root"        // gjson path to the records in a document

	// Integer flags

	FlagLimit         = "limit"          // Limit number of results
	FlagMaxInsertions = "max-insertions" // Insertion cap, -1 for none
	FlagWorkers       = "workers"        // Search parallelism
)
