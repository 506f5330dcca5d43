package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldExpenseID   = "expense_id"
	FieldCategoryID  = "category_id"
	FieldDescription = "description"
	FieldAmountCents = "amount_cents"
	FieldPeriod      = "period"
	FieldStateKey    = "state_key"
	FieldBackend     = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentCache   = "cache"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpDelete    = "delete"
	OpList      = "list"
	OpLoad      = "load"
	OpPersist   = "persist"
	OpSummarize = "summarize"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
