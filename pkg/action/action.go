// Package action maps normalized error codes to the recovery actions a
// payment flow takes for them.
package action

import (
	"fmt"
	"strings"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// ErrorAction is a set of recovery actions. Values combine with |.
type ErrorAction uint8

const (
	// Alert presents a message to the user.
	Alert ErrorAction = 1 << iota
	// Retry offers a retry button on the alert. Never set without Alert.
	Retry
	// ClosePayment ends the in-progress payment session.
	ClosePayment

	// None is the empty set: nothing user visible happens.
	None ErrorAction = 0
)

// Has reports whether every action in other is also in a.
func (a ErrorAction) Has(other ErrorAction) bool {
	return a&other == other
}

func (a ErrorAction) String() string {
	if a == None {
		return "none"
	}
	parts := make([]string, 0, 3)
	if a.Has(Alert) {
		parts = append(parts, "alert")
	}
	if a.Has(Retry) {
		parts = append(parts, "retry")
	}
	if a.Has(ClosePayment) {
		parts = append(parts, "close_payment")
	}
	if rest := a &^ (Alert | Retry | ClosePayment); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "+")
}

// MarshalText implements encoding.TextMarshaler.
func (a ErrorAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the names String
// produces.
func (a *ErrorAction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Parse reads an action set written by String, e.g. "alert+retry".
func Parse(s string) (ErrorAction, error) {
	if s == "none" {
		return None, nil
	}
	var a ErrorAction
	for _, part := range strings.Split(s, "+") {
		switch part {
		case "alert":
			a |= Alert
		case "retry":
			a |= Retry
		case "close_payment":
			a |= ClosePayment
		default:
			return None, fmt.Errorf("action: unknown action %q", part)
		}
	}
	return a, nil
}

// MissingActionError is the panic value raised by Resolve for a code that is
// absent from the action table.
type MissingActionError struct {
	Code codes.ErrorCode
}

func (e MissingActionError) Error() string {
	return fmt.Sprintf("action: no recovery action registered for %s", e.Code)
}

// Resolve returns the action set for code. It panics with a
// MissingActionError when code has no entry; that is a programming defect.
func Resolve(code codes.ErrorCode) ErrorAction {
	a, ok := table[code]
	if !ok {
		panic(MissingActionError{Code: code})
	}
	return a
}

// Lookup is the non-panicking form of Resolve.
func Lookup(code codes.ErrorCode) (ErrorAction, bool) {
	a, ok := table[code]
	return a, ok
}
