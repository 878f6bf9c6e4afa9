package classifier

import (
	"context"
	"errors"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
)

// canceler is implemented by platform errors that know whether the user
// aborted the request.
type canceler interface {
	Canceled() bool
}

// Classify returns the details to process for f, in processing order.
//
// Only API failures can yield more than one detail. An internal failure with
// an unrecognized code yields none.
func Classify(f RawFailure) []codes.ErrorDetail {
	switch f := f.(type) {
	case APIFailure:
		out := make([]codes.ErrorDetail, 0, len(f.Details))
		for _, d := range f.Details {
			out = append(out, codes.ErrorDetail{Code: d.Code, Message: d.Description})
		}
		return out
	case KnownFailure:
		return classifyKnown(f)
	default:
		return []codes.ErrorDetail{codes.NewDetail(codes.Unknown)}
	}
}

func classifyKnown(f KnownFailure) []codes.ErrorDetail {
	switch f.Kind {
	case KindInternal:
		var ice *InternalCodeError
		if !errors.As(f.Err, &ice) {
			log.WithError(f.Err).Debug("internal failure without internal code, nothing to handle")
			return nil
		}
		code, ok := ice.Code.PublicCode()
		if !ok {
			log.WithField("internal_code", int(ice.Code)).Debug("unrecognized internal code, nothing to handle")
			return nil
		}
		return []codes.ErrorDetail{codes.NewDetail(code)}
	case KindSerialization:
		return []codes.ErrorDetail{codes.NewDetail(codes.Serialization)}
	case KindNetwork:
		if IsCancellation(f.Err) {
			return []codes.ErrorDetail{codes.NewDetail(codes.Cancel)}
		}
		return []codes.ErrorDetail{codes.NewDetail(codes.Network)}
	default:
		return []codes.ErrorDetail{codes.NewDetail(codes.Unknown)}
	}
}

// IsCancellation reports whether err signals that the user cancelled the
// request.
func IsCancellation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var c canceler
	return errors.As(err, &c) && c.Canceled()
}
