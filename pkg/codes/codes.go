package codes

import "fmt"

// ErrorCode is a normalized, user-meaningful payment failure reason.
//
// The set is closed: a new reason is added here, in Registry, and in the
// action table of pkg/action. Zero is not a valid code.
type ErrorCode int

const (
	_ ErrorCode = iota

	// Request / merchant setup.
	RequestHeadersMissing
	KeyAndEnvironmentMismatch
	EmptyRequest
	InvalidJSONRequest
	ApplicationRequired
	RedirectURLMissing
	RedirectURLInvalid
	InvalidMerchantOrderReference
	InvalidMerchantTransactionReference
	InvalidStatementDescriptor
	InvalidDescription
	MissingSourceID
	InvalidSourceID
	InvalidMetadataKey
	InvalidMetadataValue

	// Customer references.
	InvalidCustomerID
	CustomerNotFound
	CustomerIDMismatch
	CustomerAlreadyExists
	MissingCustomerID
	MissingCustomerIDOrCustomerInformation
	MissingCustomerFirstName
	MissingCustomerLastName
	InvalidCustomerFirstName
	InvalidCustomerLastName
	InvalidCustomerMiddleName
	MissingPhoneNumber
	InvalidPhoneNumberCountryCode
	InvalidPhoneNumber
	InvalidEmailAddress
	MissingCustomerPhoneNumberAndEmail

	// Card and charge input.
	InvalidInput
	InvalidCardNumber
	InvalidExpirationDate
	CardAlreadyExists
	SaveCardFeatureDisabled
	SaveCardFeatureNotSupported
	Non3DSecureTransactionsForbidden
	MissingBINNumber
	InvalidBINNumber
	MissingChargeID
	InvalidChargeID
	ChargeIDNotFound
	MissingConfirmationCode
	InvalidConfirmationCode
	SourceAlreadyUsed

	// Authorize.
	AuthorizeIDMissing
	AuthorizeIDInvalid
	AuthorizeStatus
	AuthorizeIDNotFound
	MissingAuthenticationType
	InvalidAuthenticationType
	InvalidAuthorizeAutoScheduleType
	InvalidAuthorizeAutoScheduleTime

	// Amounts and currency.
	InvalidAmount
	InvalidAmountModificatorType
	InvalidCurrency
	UnsupportedCurrency
	CurrencyCodeMismatch
	CaptureAmountExceeds
	InvalidCountryCode
	InvalidUnitOfMeasurement
	InvalidMeasurement
	InvalidEnumValue

	// Credentials.
	InvalidAPIKey
	MissingAPICredentials
	PublicKeyGivenInsteadOfSecret
	PermissionDenied

	// Transport and runtime.
	GatewayTimeout
	ServerUnavailable
	RequestNotFound
	Network
	Serialization
	Cancel
	Unknown

	codeCount
)

var symbols = [codeCount]string{
	RequestHeadersMissing:               "request_headers_missing",
	KeyAndEnvironmentMismatch:           "key_and_environment_mismatch",
	EmptyRequest:                        "empty_request",
	InvalidJSONRequest:                  "invalid_json_request",
	ApplicationRequired:                 "application_required",
	RedirectURLMissing:                  "redirect_url_missing",
	RedirectURLInvalid:                  "redirect_url_invalid",
	InvalidMerchantOrderReference:       "invalid_merchant_order_reference",
	InvalidMerchantTransactionReference: "invalid_merchant_transaction_reference",
	InvalidStatementDescriptor:          "invalid_statement_descriptor",
	InvalidDescription:                  "invalid_description",
	MissingSourceID:                     "missing_source_id",
	InvalidSourceID:                     "invalid_source_id",
	InvalidMetadataKey:                  "invalid_metadata_key",
	InvalidMetadataValue:                "invalid_metadata_value",

	InvalidCustomerID:                      "invalid_customer_id",
	CustomerNotFound:                       "customer_not_found",
	CustomerIDMismatch:                     "customer_id_mismatch",
	CustomerAlreadyExists:                  "customer_already_exists",
	MissingCustomerID:                      "missing_customer_id",
	MissingCustomerIDOrCustomerInformation: "missing_customer_id_or_customer_information",
	MissingCustomerFirstName:               "missing_customer_first_name",
	MissingCustomerLastName:                "missing_customer_last_name",
	InvalidCustomerFirstName:               "invalid_customer_first_name",
	InvalidCustomerLastName:                "invalid_customer_last_name",
	InvalidCustomerMiddleName:              "invalid_customer_middle_name",
	MissingPhoneNumber:                     "missing_phone_number",
	InvalidPhoneNumberCountryCode:          "invalid_phone_number_country_code",
	InvalidPhoneNumber:                     "invalid_phone_number",
	InvalidEmailAddress:                    "invalid_email_address",
	MissingCustomerPhoneNumberAndEmail:     "missing_customer_phone_number_and_email",

	InvalidInput:                     "invalid_input",
	InvalidCardNumber:                "invalid_card_number",
	InvalidExpirationDate:            "invalid_expiration_date",
	CardAlreadyExists:                "card_already_exists",
	SaveCardFeatureDisabled:          "save_card_feature_disabled",
	SaveCardFeatureNotSupported:      "save_card_feature_not_supported",
	Non3DSecureTransactionsForbidden: "non_3d_secure_transactions_forbidden",
	MissingBINNumber:                 "missing_bin_number",
	InvalidBINNumber:                 "invalid_bin_number",
	MissingChargeID:                  "missing_charge_id",
	InvalidChargeID:                  "invalid_charge_id",
	ChargeIDNotFound:                 "charge_id_not_found",
	MissingConfirmationCode:          "missing_confirmation_code",
	InvalidConfirmationCode:          "invalid_confirmation_code",
	SourceAlreadyUsed:                "source_already_used",

	AuthorizeIDMissing:               "authorize_id_missing",
	AuthorizeIDInvalid:               "authorize_id_invalid",
	AuthorizeStatus:                  "authorize_status",
	AuthorizeIDNotFound:              "authorize_id_not_found",
	MissingAuthenticationType:        "missing_authentication_type",
	InvalidAuthenticationType:        "invalid_authentication_type",
	InvalidAuthorizeAutoScheduleType: "invalid_authorize_auto_schedule_type",
	InvalidAuthorizeAutoScheduleTime: "invalid_authorize_auto_schedule_time",

	InvalidAmount:                "invalid_amount",
	InvalidAmountModificatorType: "invalid_amount_modificator_type",
	InvalidCurrency:              "invalid_currency",
	UnsupportedCurrency:          "unsupported_currency",
	CurrencyCodeMismatch:         "currency_code_mismatch",
	CaptureAmountExceeds:         "capture_amount_exceeds",
	InvalidCountryCode:           "invalid_country_code",
	InvalidUnitOfMeasurement:     "invalid_unit_of_measurement",
	InvalidMeasurement:           "invalid_measurement",
	InvalidEnumValue:             "invalid_enum_value",

	InvalidAPIKey:                 "invalid_api_key",
	MissingAPICredentials:         "missing_api_credentials",
	PublicKeyGivenInsteadOfSecret: "public_key_given_instead_of_secret",
	PermissionDenied:              "permission_denied",

	GatewayTimeout:    "gateway_timeout",
	ServerUnavailable: "server_unavailable",
	RequestNotFound:   "request_not_found",
	Network:           "network",
	Serialization:     "serialization",
	Cancel:            "cancel",
	Unknown:           "unknown",
}

// Registry lists every ErrorCode exactly once, in declaration order.
var Registry = func() []ErrorCode {
	all := make([]ErrorCode, 0, codeCount-1)
	for c := ErrorCode(1); c < codeCount; c++ {
		all = append(all, c)
	}
	return all
}()

var bySymbol = func() map[string]ErrorCode {
	m := make(map[string]ErrorCode, len(Registry))
	for _, c := range Registry {
		m[symbols[c]] = c
	}
	return m
}()

// Valid reports whether c is a member of the enumeration.
func (c ErrorCode) Valid() bool {
	return c > 0 && c < codeCount
}

// Symbol returns the stable snake_case name used on the wire and as the
// localization key prefix.
func (c ErrorCode) Symbol() string {
	if !c.Valid() {
		return ""
	}
	return symbols[c]
}

func (c ErrorCode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return symbols[c]
}

// ParseSymbol looks a code up by its symbol.
func ParseSymbol(symbol string) (ErrorCode, bool) {
	c, ok := bySymbol[symbol]
	return c, ok
}

// MarshalText implements encoding.TextMarshaler.
func (c ErrorCode) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("codes: invalid error code %d", int(c))
	}
	return []byte(symbols[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ErrorCode) UnmarshalText(text []byte) error {
	parsed, ok := ParseSymbol(string(text))
	if !ok {
		return fmt.Errorf("codes: unknown error code %q", string(text))
	}
	*c = parsed
	return nil
}
