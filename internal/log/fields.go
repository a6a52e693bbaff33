package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldScheme       = "scheme"
	FieldTransactions = "transactions"
	FieldQPeriods     = "q_periods"
	FieldPPeriods     = "p_periods"
	FieldKPeriods     = "k_periods"
	FieldWage         = "wage"
	FieldAge          = "age"
	FieldCacheKey     = "cache_key"
	FieldMessageID    = "message_id"
	FieldQueue        = "queue"
	FieldExchange     = "exchange"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentEngine = "engine"
	ComponentAMQP   = "amqp"
	ComponentWorker = "worker"
	ComponentCache  = "cache"
	ComponentReport = "report"
)

// Operations defines standard operation names
const (
	OpParse    = "parse"
	OpValidate = "validate"
	OpFilter   = "filter"
	OpGroups   = "groups"
	OpReturns  = "returns"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
