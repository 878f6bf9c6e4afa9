// Package recovery drives the recovery actions for a payment failure: it
// classifies the failure, resolves the actions of every resulting detail and
// executes them in order through an Executor.
package recovery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/Goden-Gun/payment-recovery/pkg/action"
	"github.com/Goden-Gun/payment-recovery/pkg/classifier"
	"github.com/Goden-Gun/payment-recovery/pkg/codes"
	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
	"github.com/Goden-Gun/payment-recovery/pkg/tracing"
)

// Manager is the error data manager. It holds no per-call state and may be
// shared by concurrent Handle calls.
type Manager struct {
	executor  Executor
	localizer Localizer
	logger    *log.Logger
	tracer    trace.Tracer
	observers []Observer
	now       func() time.Time
	newID     func() string
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger replaces the logrus standard logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTracer replaces the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(m *Manager) {
		if t != nil {
			m.tracer = t
		}
	}
}

// WithObserver adds an outcome observer. Observers run in registration order.
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator overrides the handle ID source, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// New builds a Manager. A nil localizer falls back to code symbols.
func New(executor Executor, localizer Localizer, opts ...Option) (*Manager, error) {
	if executor == nil {
		return nil, errors.New("recovery executor is required")
	}
	if localizer == nil {
		localizer = symbolLocalizer{}
	}
	m := &Manager{
		executor:  executor,
		localizer: localizer,
		logger:    log.StandardLogger(),
		tracer:    tracing.Tracer(tracing.InstrumentationName),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Handle runs the recovery cycle for failure. It blocks until every detail
// has been processed or the user retried.
//
// onRetry and onDismiss are each called at most once and never both. onRetry
// fires when the user retries before any alert was dismissed; onDismiss fires
// at the first dismissed alert. A failure that classifies to nothing, or whose
// details show no alert, fires neither.
func (m *Manager) Handle(ctx context.Context, failure classifier.RawFailure, onRetry, onDismiss func()) {
	m.Process(ctx, failure, onRetry, onDismiss)
}

// Process is Handle returning a summary of what happened.
func (m *Manager) Process(ctx context.Context, failure classifier.RawFailure, onRetry, onDismiss func()) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	details := classifier.Classify(failure)

	out := Outcome{
		HandleID:  m.newID(),
		SessionID: SessionFromContext(ctx),
		Failure:   describe(failure),
		Details:   len(details),
		Steps:     make([]Step, 0, len(details)),
		Result:    ResultNone,
		StartedAt: m.now(),
	}

	ctx, span := tracing.StartHandle(ctx, m.tracer, out.HandleID, out.SessionID, len(details))
	defer span.End()

	entry := log.EntryWithTrace(log.NewEntry(m.logger), ctx).WithFields(log.Fields{
		log.FieldHandleID:  out.HandleID,
		log.FieldSessionID: out.SessionID,
	})

	if len(details) == 0 {
		entry.WithField("failure", out.Failure).Debug("failure produced no error details, nothing to handle")
	}

	dismissed := false
	for i, detail := range details {
		if ctx.Err() != nil {
			out.Aborted = true
			entry.WithError(ctx.Err()).WithField(log.FieldStep, i).Warn("recovery aborted before all details were handled")
			break
		}

		step := m.runStep(ctx, entry, failure, i, detail)
		out.Steps = append(out.Steps, step)
		tracing.RecordStep(span, detail.Code.Symbol(), step.Action.String(), step.Choice.String())

		if step.Interrupted {
			out.Aborted = true
			entry.WithError(ctx.Err()).WithField(log.FieldStep, i).Warn("recovery aborted while waiting for the executor")
			break
		}

		if step.Alerted && step.Choice == Retried {
			if dismissed {
				out.RetryIgnored = true
				entry.WithField(log.FieldCode, detail.Code.Symbol()).Warn("retry chosen after an earlier alert was dismissed, retry callback not fired")
			} else {
				out.Result = ResultRetried
				if onRetry != nil {
					onRetry()
				}
			}
			break
		}

		if step.Alerted && !dismissed {
			dismissed = true
			out.Result = ResultDismissed
			if onDismiss != nil {
				onDismiss()
			}
		}
	}

	out.FinishedAt = m.now()
	tracing.Finish(span, string(out.Result), out.Aborted)
	entry.WithFields(log.Fields{
		log.FieldResult: out.Result,
		"details":       out.Details,
		"steps":         len(out.Steps),
	}).Info("payment error handled")

	for _, o := range m.observers {
		o.ObserveOutcome(ctx, out)
	}
	return out
}

// runStep executes the actions of one detail: close the payment first, then
// alert. When ctx ends while the executor is waiting, the pending action is
// not counted as done and the step is marked Interrupted.
func (m *Manager) runStep(ctx context.Context, entry *log.Entry, failure classifier.RawFailure, index int, detail codes.ErrorDetail) Step {
	step := Step{
		Index:  index,
		Detail: detail,
		Action: action.Resolve(detail.Code),
	}
	entry = entry.WithFields(log.Fields{
		log.FieldStep:   index,
		log.FieldCode:   detail.Code.Symbol(),
		log.FieldAction: step.Action.String(),
	})

	if step.Action.Has(action.ClosePayment) {
		entry.Debug("closing payment session")
		m.executor.ClosePayment(ctx, failure)
		if ctx.Err() != nil {
			step.Interrupted = true
			return step
		}
		step.Closed = true
	}

	if !step.Action.Has(action.Alert) {
		entry.Debug("no alert for error detail")
		return step
	}

	alert := Alert{
		Code:       detail.Code,
		Title:      m.localizer.Title(detail.Code),
		Message:    m.localizer.Message(detail.Code),
		OfferRetry: step.Action.Has(action.Retry),
	}
	choice := m.executor.PresentAlert(ctx, alert)
	if ctx.Err() != nil {
		step.Interrupted = true
		return step
	}
	if choice != Retried || !alert.OfferRetry {
		choice = Dismissed
	}
	step.Alerted = true
	step.Choice = choice
	entry.WithField(log.FieldChoice, choice.String()).Debug("alert resolved")
	return step
}

func describe(f classifier.RawFailure) string {
	if f == nil {
		return "<nil>"
	}
	return f.Error()
}
