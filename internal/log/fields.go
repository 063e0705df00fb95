package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldID        = "id"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldCount     = "count"
	FieldRow       = "row"
	FieldFile      = "file"
	FieldBackend   = "backend"
	FieldLimit     = "limit"
	FieldPeriod    = "period"
)

// Components defines standard component names
const (
	ComponentApp         = "app"
	ComponentCLI         = "cli"
	ComponentStorage     = "storage"
	ComponentService     = "service"
	ComponentInterchange = "interchange"
)
