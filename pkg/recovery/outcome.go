package recovery

import (
	"context"
	"time"

	"github.com/Goden-Gun/payment-recovery/pkg/action"
	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// Result tells which caller callback a Handle call fired.
type Result string

const (
	// ResultNone: no callback fired (empty sequence, or no alert shown).
	ResultNone Result = "none"
	// ResultDismissed: onDismiss fired.
	ResultDismissed Result = "dismissed"
	// ResultRetried: onRetry fired.
	ResultRetried Result = "retried"
)

// Step records the processing of one detail.
type Step struct {
	Index   int                `json:"index"`
	Detail  codes.ErrorDetail  `json:"detail"`
	Action  action.ErrorAction `json:"action"`
	Closed  bool               `json:"closed_payment"`
	Alerted bool               `json:"alerted"`
	// Choice is zero unless Alerted.
	Choice Choice `json:"choice"`
	// Interrupted is set when ctx ended before the executor finished the
	// close or the alert of this step.
	Interrupted bool `json:"interrupted,omitempty"`
}

// Outcome summarizes one Handle call.
type Outcome struct {
	HandleID  string `json:"handle_id"`
	SessionID string `json:"session_id,omitempty"`
	Failure   string `json:"failure"`
	Details   int    `json:"details"`
	Steps     []Step `json:"steps"`
	Result    Result `json:"result"`
	Aborted   bool   `json:"aborted,omitempty"`
	// RetryIgnored is set when the user retried after onDismiss had already
	// fired; the walk stopped but onRetry was not called.
	RetryIgnored bool      `json:"retry_ignored,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

// Observer is notified once per Handle call, after the walk finished and the
// caller callback (if any) returned. Implementations must not block for long.
type Observer interface {
	ObserveOutcome(ctx context.Context, outcome Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, outcome Outcome)

func (f ObserverFunc) ObserveOutcome(ctx context.Context, outcome Outcome) { f(ctx, outcome) }

type sessionKey struct{}

// ContextWithSession tags ctx with the payment session being recovered.
func ContextWithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFromContext returns the session ID set by ContextWithSession.
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
