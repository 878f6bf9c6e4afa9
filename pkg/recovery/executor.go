package recovery

import (
	"context"
	"fmt"
	"sync"

	"github.com/Goden-Gun/payment-recovery/pkg/classifier"
	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// Choice is the user's answer to an alert.
type Choice int

const (
	// Dismissed means the alert was closed without asking for a retry.
	Dismissed Choice = iota + 1
	// Retried means the user asked to retry the failed operation.
	Retried
)

func (c Choice) String() string {
	switch c {
	case Dismissed:
		return "dismissed"
	case Retried:
		return "retried"
	case 0:
		return "none"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Choice) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Choice) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dismissed":
		*c = Dismissed
	case "retried":
		*c = Retried
	case "none", "":
		*c = 0
	default:
		return fmt.Errorf("recovery: unknown choice %q", string(text))
	}
	return nil
}

// Alert is what the executor is asked to present.
type Alert struct {
	Code       codes.ErrorCode
	Title      string
	Message    string
	OfferRetry bool
}

// Executor performs the user-visible side effects of a recovery action.
//
// Both methods block until the UI has finished: PresentAlert until the user
// chose, ClosePayment until the session is closed. They are called from the
// goroutine running Manager.Handle, one at a time.
type Executor interface {
	PresentAlert(ctx context.Context, alert Alert) Choice
	ClosePayment(ctx context.Context, failure classifier.RawFailure)
}

// Localizer resolves alert strings for a code.
type Localizer interface {
	Title(code codes.ErrorCode) string
	Message(code codes.ErrorCode) string
}

// CallbackExecutor adapts completion-callback style UI hooks to Executor.
// A nil hook behaves as if it completed immediately (an alert hook then
// reports Dismissed). Completion callbacks may be invoked from any goroutine;
// only the first invocation counts.
type CallbackExecutor struct {
	ShowAlert func(alert Alert, done func(Choice))
	Close     func(failure classifier.RawFailure, onClosed func())
}

// PresentAlert implements Executor. A cancelled ctx stops the wait; the
// Manager then records the step as interrupted rather than dismissed.
func (e CallbackExecutor) PresentAlert(ctx context.Context, alert Alert) Choice {
	if e.ShowAlert == nil {
		return Dismissed
	}
	ch := make(chan Choice, 1)
	var once sync.Once
	e.ShowAlert(alert, func(c Choice) {
		once.Do(func() { ch <- c })
	})
	select {
	case c := <-ch:
		return c
	case <-ctx.Done():
		return Dismissed
	}
}

// ClosePayment implements Executor.
func (e CallbackExecutor) ClosePayment(ctx context.Context, failure classifier.RawFailure) {
	if e.Close == nil {
		return
	}
	done := make(chan struct{})
	var once sync.Once
	e.Close(failure, func() {
		once.Do(func() { close(done) })
	})
	select {
	case <-done:
	case <-ctx.Done():
	}
}

type symbolLocalizer struct{}

func (symbolLocalizer) Title(code codes.ErrorCode) string   { return code.Symbol() }
func (symbolLocalizer) Message(code codes.ErrorCode) string { return code.Symbol() }
