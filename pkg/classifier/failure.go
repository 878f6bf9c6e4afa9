// Package classifier turns raw payment failures into ordered, normalized
// error details.
//
// RawFailure is a closed sum type. Only this package looks at which variant a
// failure is; everything downstream works with codes.ErrorDetail.
package classifier

import (
	"fmt"
	"strings"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// RawFailure is implemented by APIFailure, KnownFailure and UnknownFailure.
type RawFailure interface {
	error
	rawFailure()
}

// APIErrorDetail is one sub-error reported by the payment gateway.
type APIErrorDetail struct {
	Code        codes.ErrorCode
	Description string
}

// APIFailure is a gateway response carrying zero or more sub-errors, in the
// order the gateway reported them.
type APIFailure struct {
	Details []APIErrorDetail
}

func (APIFailure) rawFailure() {}

func (f APIFailure) Error() string {
	if len(f.Details) == 0 {
		return "api failure"
	}
	parts := make([]string, len(f.Details))
	for i, d := range f.Details {
		parts[i] = d.Code.String()
	}
	return "api failure: " + strings.Join(parts, ", ")
}

// KnownKind tags the origin of a KnownFailure.
type KnownKind int

const (
	KindInternal KnownKind = iota + 1
	KindSerialization
	KindNetwork
	KindUnknown
	KindAPI
)

func (k KnownKind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindSerialization:
		return "serialization"
	case KindNetwork:
		return "network"
	case KindUnknown:
		return "unknown"
	case KindAPI:
		return "api"
	default:
		return fmt.Sprintf("KnownKind(%d)", int(k))
	}
}

// ParseKnownKind is the inverse of KnownKind.String.
func ParseKnownKind(s string) (KnownKind, bool) {
	for k := KindInternal; k <= KindAPI; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// KnownFailure wraps an underlying platform error whose origin is known.
type KnownFailure struct {
	Kind KnownKind
	Err  error
}

func (KnownFailure) rawFailure() {}

func (f KnownFailure) Error() string {
	if f.Err == nil {
		return f.Kind.String() + " failure"
	}
	return f.Kind.String() + " failure: " + f.Err.Error()
}

func (f KnownFailure) Unwrap() error { return f.Err }

// UnknownFailure is an opaque failure nothing is known about.
type UnknownFailure struct {
	Err error
}

func (UnknownFailure) rawFailure() {}

func (f UnknownFailure) Error() string {
	if f.Err == nil {
		return "unknown failure"
	}
	return "unknown failure: " + f.Err.Error()
}

func (f UnknownFailure) Unwrap() error { return f.Err }
