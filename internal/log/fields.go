package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldKey         = "key"
	FieldCount       = "count"
	FieldExpenseID   = "expense_id"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldBackend     = "backend"
	FieldPath        = "path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentKV      = "kv"
	ComponentBackend = "backend"
	ComponentCLI     = "cli"
)
