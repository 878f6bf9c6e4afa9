package action

import (
	"fmt"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

// Group is one partition of the code space sharing an action set.
type Group struct {
	Name   string
	Action ErrorAction
	Codes  []codes.ErrorCode
}

var groups = []Group{
	{
		// The session cannot continue and there is nothing the user can fix.
		Name:   "close_payment",
		Action: ClosePayment,
		Codes: []codes.ErrorCode{
			codes.RequestHeadersMissing,
			codes.KeyAndEnvironmentMismatch,
			codes.EmptyRequest,
			codes.InvalidCustomerID,
			codes.CustomerNotFound,
			codes.CustomerIDMismatch,
			codes.CustomerAlreadyExists,
			codes.RedirectURLMissing,
			codes.RedirectURLInvalid,
			codes.InvalidMerchantOrderReference,
			codes.InvalidMerchantTransactionReference,
			codes.InvalidStatementDescriptor,
			codes.InvalidDescription,
			codes.MissingSourceID,
			codes.InvalidSourceID,
			codes.InvalidMetadataKey,
			codes.InvalidMetadataValue,
			codes.InvalidJSONRequest,
			codes.ApplicationRequired,
		},
	},
	{
		Name:   "alert",
		Action: Alert,
		Codes: []codes.ErrorCode{
			codes.InvalidInput,
			codes.SaveCardFeatureDisabled,
			codes.Non3DSecureTransactionsForbidden,
			codes.AuthorizeIDMissing,
			codes.AuthorizeIDInvalid,
			codes.AuthorizeStatus,
			codes.AuthorizeIDNotFound,
			codes.SaveCardFeatureNotSupported,
			codes.InvalidCardNumber,
			codes.InvalidExpirationDate,
			codes.MissingChargeID,
			codes.InvalidChargeID,
			codes.ChargeIDNotFound,
			codes.MissingConfirmationCode,
			codes.InvalidConfirmationCode,
			codes.CurrencyCodeMismatch,
			codes.CaptureAmountExceeds,
			codes.InvalidCountryCode,
			codes.Serialization,
			codes.InvalidEnumValue,
			codes.CardAlreadyExists,
		},
	},
	{
		Name:   "alert_retry",
		Action: Alert | Retry,
		Codes: []codes.ErrorCode{
			codes.SourceAlreadyUsed,
			codes.GatewayTimeout,
			codes.ServerUnavailable,
			codes.RequestNotFound,
			codes.Network,
			codes.Unknown,
		},
	},
	{
		// Tell the user why, then end the session.
		Name:   "alert_close_payment",
		Action: Alert | ClosePayment,
		Codes: []codes.ErrorCode{
			codes.MissingCustomerIDOrCustomerInformation,
			codes.MissingCustomerFirstName,
			codes.MissingCustomerLastName,
			codes.InvalidCustomerFirstName,
			codes.InvalidCustomerLastName,
			codes.InvalidCustomerMiddleName,
			codes.MissingPhoneNumber,
			codes.InvalidPhoneNumberCountryCode,
			codes.InvalidPhoneNumber,
			codes.InvalidEmailAddress,
			codes.MissingCustomerPhoneNumberAndEmail,
			codes.MissingAuthenticationType,
			codes.InvalidAuthorizeAutoScheduleType,
			codes.InvalidAuthorizeAutoScheduleTime,
			codes.InvalidAuthenticationType,
			codes.InvalidAmountModificatorType,
			codes.InvalidUnitOfMeasurement,
			codes.InvalidMeasurement,
			codes.InvalidAmount,
			codes.InvalidCurrency,
			codes.UnsupportedCurrency,
			codes.MissingCustomerID,
			codes.InvalidAPIKey,
			codes.MissingAPICredentials,
			codes.PublicKeyGivenInsteadOfSecret,
			codes.PermissionDenied,
		},
	},
	{
		Name:   "none",
		Action: None,
		Codes: []codes.ErrorCode{
			codes.MissingBINNumber,
			codes.InvalidBINNumber,
			codes.Cancel,
		},
	},
}

var table = func() map[codes.ErrorCode]ErrorAction {
	m := make(map[codes.ErrorCode]ErrorAction, len(codes.Registry))
	for _, g := range groups {
		for _, c := range g.Codes {
			m[c] = g.Action
		}
	}
	return m
}()

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Groups returns a copy of the partition.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Name: g.Name, Action: g.Action, Codes: append([]codes.ErrorCode(nil), g.Codes...)}
	}
	return out
}

// Allowed reports whether a is one of the group action sets.
func Allowed(a ErrorAction) bool {
	for _, g := range groups {
		if g.Action == a {
			return true
		}
	}
	return false
}

// Validate checks that the groups partition codes.Registry: every code in
// exactly one group, no unregistered code, and no Retry without Alert.
func Validate() error {
	owner := make(map[codes.ErrorCode]string, len(codes.Registry))
	for _, g := range groups {
		if g.Action.Has(Retry) && !g.Action.Has(Alert) {
			return fmt.Errorf("action: group %s offers retry without alert", g.Name)
		}
		for _, c := range g.Codes {
			if !c.Valid() {
				return fmt.Errorf("action: group %s lists unregistered code %d", g.Name, int(c))
			}
			if prev, dup := owner[c]; dup {
				return fmt.Errorf("action: %s is in both %s and %s", c, prev, g.Name)
			}
			owner[c] = g.Name
		}
	}
	for _, c := range codes.Registry {
		if _, ok := owner[c]; !ok {
			return MissingActionError{Code: c}
		}
	}
	return nil
}
