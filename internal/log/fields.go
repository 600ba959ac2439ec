package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldKey        = "key"
	FieldSpendingID = "spending_id"
	FieldCategory   = "category"
	FieldCategoryID = "category_id"
	FieldAmount     = "amount"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldBytes      = "bytes"
	FieldBackend    = "backend"
	FieldDurationMs = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentStore      = "store"
	ComponentWriter     = "writer"
	ComponentKV         = "kv"
	ComponentCache      = "cache"
	ComponentBackend    = "backend"
	ComponentOnboarding = "onboarding"
	ComponentCLI        = "cli"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpPersist   = "persist"
	OpRecompute = "recompute"
	OpCreate    = "create"
	OpDelete    = "delete"
	OpFlush     = "flush"
	OpShutdown  = "shutdown"
	OpStartup   = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithKey adds the key-value store key
func (f LogFields) WithKey(key string) LogFields {
	f[FieldKey] = key
	return f
}

// WithSpending adds spending-related fields
func (f LogFields) WithSpending(id, category, amount string, year int, month string) LogFields {
	f[FieldSpendingID] = id
	f[FieldCategory] = category
	f[FieldAmount] = amount
	f[FieldYear] = year
	f[FieldMonth] = month
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
