package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldBody      = "body"
	FieldAttempt   = "attempt"
	FieldBackoff   = "backoff_ms"
	FieldError     = "error"
	FieldRequestID = "request_id"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Info("sent", logger.Fields("method", "GET", "status", 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
