package logging

// Standardized field names for structured logging, so log output stays
// consistent across parsers and easy to filter.
const (
	FieldFile     = "file_path"
	FieldKind     = "kind"
	FieldParser   = "parser"
	FieldStrategy = "strategy"
	FieldPage     = "page"
	FieldCount    = "count"
	FieldReason   = "reason"
)
