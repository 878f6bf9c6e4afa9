package classifier

import (
	"fmt"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// InternalError enumerates failures the SDK raises itself while validating a
// payment request before it reaches the gateway.
type InternalError int

const (
	InvalidCountryCode InternalError = iota + 1
	InvalidAmountModificatorType
	InvalidAuthorizeActionType
	InvalidCurrency
	InvalidCustomerInfo
	CustomerAlreadyExists
	CardAlreadyExists
	InvalidEmail
	InvalidISDNumber
	InvalidPhoneNumber
	InvalidUnitOfMeasurement
	InvalidMeasurement
	InvalidEnumValue
)

// internalCodes translates internal failures into the public enumeration.
// Some public names differ from the internal ones.
var internalCodes = map[InternalError]codes.ErrorCode{
	InvalidCountryCode:           codes.InvalidCountryCode,
	InvalidAmountModificatorType: codes.InvalidAmountModificatorType,
	InvalidAuthorizeActionType:   codes.InvalidAuthorizeAutoScheduleType,
	InvalidCurrency:              codes.InvalidCurrency,
	InvalidCustomerInfo:          codes.MissingCustomerIDOrCustomerInformation,
	CustomerAlreadyExists:        codes.CustomerAlreadyExists,
	CardAlreadyExists:            codes.CardAlreadyExists,
	InvalidEmail:                 codes.InvalidEmailAddress,
	InvalidISDNumber:             codes.InvalidPhoneNumberCountryCode,
	InvalidPhoneNumber:           codes.InvalidPhoneNumber,
	InvalidUnitOfMeasurement:     codes.InvalidUnitOfMeasurement,
	InvalidMeasurement:           codes.InvalidMeasurement,
	InvalidEnumValue:             codes.InvalidEnumValue,
}

// PublicCode returns the public code for e, if e is a recognized internal code.
func (e InternalError) PublicCode() (codes.ErrorCode, bool) {
	c, ok := internalCodes[e]
	return c, ok
}

// InternalCodeError is the platform error carried by a KnownFailure of kind
// internal. Code may hold values outside the enumeration.
type InternalCodeError struct {
	Code    InternalError
	Message string
}

func (e *InternalCodeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("internal error %d: %s", int(e.Code), e.Message)
	}
	return fmt.Sprintf("internal error %d", int(e.Code))
}

// NewInternal builds a KnownFailure of kind internal around code.
func NewInternal(code InternalError, msg string) KnownFailure {
	return KnownFailure{Kind: KindInternal, Err: &InternalCodeError{Code: code, Message: msg}}
}
