package logger

// Field keys shared by every package that logs a recovery cycle.
const (
	FieldHandleID  = "handle_id"
	FieldSessionID = "session_id"
	FieldCode      = "error_code"
	FieldAction    = "recovery_action"
	FieldChoice    = "choice"
	FieldStep      = "step"
	FieldResult    = "result"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
)
