package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

func TestResolve_TotalOverRegistry(t *testing.T) {
	for _, c := range codes.Registry {
		t.Run(c.String(), func(t *testing.T) {
			var got ErrorAction
			require.NotPanics(t, func() { got = Resolve(c) })
			assert.True(t, Allowed(got), "%s resolves to %s", c, got)
			assert.Equal(t, got, Resolve(c), "resolve must be deterministic")
		})
	}
}

func TestResolve_NeverRetryWithoutAlert(t *testing.T) {
	for _, c := range codes.Registry {
		a := Resolve(c)
		if a.Has(Retry) {
			assert.True(t, a.Has(Alert), "%s offers silent retry", c)
			assert.False(t, a.Has(ClosePayment), "%s both retries and closes", c)
		}
	}
}

func TestResolve_KnownCodes(t *testing.T) {
	tests := []struct {
		name string
		code codes.ErrorCode
		want ErrorAction
	}{
		{name: "headers missing closes", code: codes.RequestHeadersMissing, want: ClosePayment},
		{name: "customer exists closes", code: codes.CustomerAlreadyExists, want: ClosePayment},
		{name: "card number alerts", code: codes.InvalidCardNumber, want: Alert},
		{name: "serialization alerts", code: codes.Serialization, want: Alert},
		{name: "card exists alerts", code: codes.CardAlreadyExists, want: Alert},
		{name: "network retries", code: codes.Network, want: Alert | Retry},
		{name: "unknown retries", code: codes.Unknown, want: Alert | Retry},
		{name: "gateway timeout retries", code: codes.GatewayTimeout, want: Alert | Retry},
		{name: "missing customer id alerts and closes", code: codes.MissingCustomerID, want: Alert | ClosePayment},
		{name: "permission denied alerts and closes", code: codes.PermissionDenied, want: Alert | ClosePayment},
		{name: "cancel is silent", code: codes.Cancel, want: None},
		{name: "bin number is silent", code: codes.InvalidBINNumber, want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.code))
		})
	}
}

// resolveGolden pins the action of every code symbol. A code moving between
// groups has to be reflected here.
var resolveGolden = map[string]ErrorAction{
		"request_headers_missing":                     ClosePayment,
		"key_and_environment_mismatch":                ClosePayment,
		"empty_request":                               ClosePayment,
		"invalid_customer_id":                         ClosePayment,
		"customer_not_found":                          ClosePayment,
		"customer_id_mismatch":                        ClosePayment,
		"customer_already_exists":                     ClosePayment,
		"redirect_url_missing":                        ClosePayment,
		"redirect_url_invalid":                        ClosePayment,
		"invalid_merchant_order_reference":            ClosePayment,
		"invalid_merchant_transaction_reference":      ClosePayment,
		"invalid_statement_descriptor":                ClosePayment,
		"invalid_description":                         ClosePayment,
		"missing_source_id":                           ClosePayment,
		"invalid_source_id":                           ClosePayment,
		"invalid_metadata_key":                        ClosePayment,
		"invalid_metadata_value":                      ClosePayment,
		"invalid_json_request":                        ClosePayment,
		"application_required":                        ClosePayment,
		"invalid_input":                               Alert,
		"save_card_feature_disabled":                  Alert,
		"non_3d_secure_transactions_forbidden":        Alert,
		"authorize_id_missing":                        Alert,
		"authorize_id_invalid":                        Alert,
		"authorize_status":                            Alert,
		"authorize_id_not_found":                      Alert,
		"save_card_feature_not_supported":             Alert,
		"invalid_card_number":                         Alert,
		"invalid_expiration_date":                     Alert,
		"missing_charge_id":                           Alert,
		"invalid_charge_id":                           Alert,
		"charge_id_not_found":                         Alert,
		"missing_confirmation_code":                   Alert,
		"invalid_confirmation_code":                   Alert,
		"currency_code_mismatch":                      Alert,
		"capture_amount_exceeds":                      Alert,
		"invalid_country_code":                        Alert,
		"serialization":                               Alert,
		"invalid_enum_value":                          Alert,
		"card_already_exists":                         Alert,
		"source_already_used":                         Alert | Retry,
		"gateway_timeout":                             Alert | Retry,
		"server_unavailable":                          Alert | Retry,
		"request_not_found":                           Alert | Retry,
		"network":                                     Alert | Retry,
		"unknown":                                     Alert | Retry,
		"missing_customer_id_or_customer_information": Alert | ClosePayment,
		"missing_customer_first_name":                 Alert | ClosePayment,
		"missing_customer_last_name":                  Alert | ClosePayment,
		"invalid_customer_first_name":                 Alert | ClosePayment,
		"invalid_customer_last_name":                  Alert | ClosePayment,
		"invalid_customer_middle_name":                Alert | ClosePayment,
		"missing_phone_number":                        Alert | ClosePayment,
		"invalid_phone_number_country_code":           Alert | ClosePayment,
		"invalid_phone_number":                        Alert | ClosePayment,
		"invalid_email_address":                       Alert | ClosePayment,
		"missing_customer_phone_number_and_email":     Alert | ClosePayment,
		"missing_authentication_type":                 Alert | ClosePayment,
		"invalid_authorize_auto_schedule_type":        Alert | ClosePayment,
		"invalid_authorize_auto_schedule_time":        Alert | ClosePayment,
		"invalid_authentication_type":                 Alert | ClosePayment,
		"invalid_amount_modificator_type":             Alert | ClosePayment,
		"invalid_unit_of_measurement":                 Alert | ClosePayment,
		"invalid_measurement":                         Alert | ClosePayment,
		"invalid_amount":                              Alert | ClosePayment,
		"invalid_currency":                            Alert | ClosePayment,
		"unsupported_currency":                        Alert | ClosePayment,
		"missing_customer_id":                         Alert | ClosePayment,
		"invalid_api_key":                             Alert | ClosePayment,
		"missing_api_credentials":                     Alert | ClosePayment,
		"public_key_given_instead_of_secret":          Alert | ClosePayment,
		"permission_denied":                           Alert | ClosePayment,
		"missing_bin_number":                          None,
		"invalid_bin_number":                          None,
		"cancel":                                      None,
}

func TestResolve_Golden(t *testing.T) {
	require.Len(t, resolveGolden, len(codes.Registry))
	for symbol, want := range resolveGolden {
		t.Run(symbol, func(t *testing.T) {
			c, ok := codes.ParseSymbol(symbol)
			require.True(t, ok, "unknown symbol %q", symbol)
			assert.Equal(t, want, Resolve(c), "%s resolves to %s", symbol, Resolve(c))
		})
	}
	for _, c := range codes.Registry {
		_, ok := resolveGolden[c.Symbol()]
		assert.True(t, ok, "%s missing from golden table", c.Symbol())
	}
}

func TestResolve_PanicsOnUnregisteredCode(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(MissingActionError)
		require.True(t, ok, "panic value %T", r)
		assert.Equal(t, codes.ErrorCode(0), err.Code)
		assert.Contains(t, err.Error(), "no recovery action")
	}()
	Resolve(codes.ErrorCode(0))
}

func TestLookup(t *testing.T) {
	a, ok := Lookup(codes.Network)
	require.True(t, ok)
	assert.Equal(t, Alert|Retry, a)

	_, ok = Lookup(codes.ErrorCode(-5))
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestGroups_PartitionRegistry(t *testing.T) {
	gs := Groups()
	require.Len(t, gs, 5)

	total := 0
	for _, g := range gs {
		total += len(g.Codes)
	}
	assert.Equal(t, len(codes.Registry), total)

	gs[0].Codes[0] = codes.Unknown
	assert.Equal(t, ClosePayment, Resolve(codes.RequestHeadersMissing), "Groups must return a copy")
	assert.Equal(t, codes.RequestHeadersMissing, Groups()[0].Codes[0])
}

func TestErrorAction_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "alert", Alert.String())
	assert.Equal(t, "alert+retry", (Alert | Retry).String())
	assert.Equal(t, "alert+close_payment", (ClosePayment | Alert).String())
	assert.Equal(t, "close_payment+0x80", (ClosePayment | ErrorAction(0x80)).String())
}

func TestAllowed_RejectsOutsideCombinations(t *testing.T) {
	assert.False(t, Allowed(Retry))
	assert.False(t, Allowed(Retry|ClosePayment))
	assert.False(t, Allowed(Alert|Retry|ClosePayment))
	assert.True(t, Allowed(None))
}

func TestParse(t *testing.T) {
	for _, g := range Groups() {
		got, err := Parse(g.Action.String())
		require.NoError(t, err)
		assert.Equal(t, g.Action, got)
	}
	_, err := Parse("alert+teleport")
	assert.Error(t, err)
}
