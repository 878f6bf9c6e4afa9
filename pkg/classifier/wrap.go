package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// FromError places an arbitrary error into the RawFailure sum type.
//
// A failure already in the chain is returned as is. Otherwise the error is
// tagged by what it is: internal validation, JSON decoding, cancellation or
// network. Anything else, including nil, is an UnknownFailure.
func FromError(err error) RawFailure {
	if err == nil {
		return UnknownFailure{}
	}

	var api APIFailure
	if errors.As(err, &api) {
		return api
	}
	var known KnownFailure
	if errors.As(err, &known) {
		return known
	}
	var unknown UnknownFailure
	if errors.As(err, &unknown) {
		return unknown
	}

	var ice *InternalCodeError
	if errors.As(err, &ice) {
		return KnownFailure{Kind: KindInternal, Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return KnownFailure{Kind: KindSerialization, Err: err}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KnownFailure{Kind: KindNetwork, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KnownFailure{Kind: KindNetwork, Err: err}
	}

	return UnknownFailure{Err: err}
}

type apiErrorBody struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}

// DecodeAPIFailure decodes a gateway error body of the form
//
//	{"errors":[{"code":"invalid_card_number","description":"..."}]}
//
// A code the enumeration does not know becomes codes.Unknown so that every
// reported sub-error still yields a detail.
func DecodeAPIFailure(body []byte) (APIFailure, error) {
	var raw apiErrorBody
	if err := json.Unmarshal(body, &raw); err != nil {
		return APIFailure{}, fmt.Errorf("decode api failure: %w", err)
	}
	f := APIFailure{Details: make([]APIErrorDetail, 0, len(raw.Errors))}
	for _, e := range raw.Errors {
		code, ok := codes.ParseSymbol(e.Code)
		if !ok {
			code = codes.Unknown
		}
		f.Details = append(f.Details, APIErrorDetail{Code: code, Description: e.Description})
	}
	return f, nil
}
