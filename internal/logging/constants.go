package logging

// Standardized field names for structured logging.
const (
	FieldFile    = "file_path"
	FieldSource  = "source"
	FieldRuleID  = "rule_id"
	FieldPattern = "pattern"
	FieldCount   = "count"
	FieldSkipped = "skipped"
)
