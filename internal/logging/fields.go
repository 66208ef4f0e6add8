package logging

// Field names for structured logging.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldRoot   = "root"
	FieldLine   = "line"
	FieldKind   = "kind"

	FieldEntries     = "entries"
	FieldDirectories = "directories"
	FieldWarnings    = "warnings"
	FieldIgnored     = "ignored"
	FieldSkipped     = "skipped"
	FieldBytes       = "bytes"
	FieldDryRun      = "dry_run"
	FieldIndentUnit  = "indent_unit"
	FieldConfig      = "config"
)
