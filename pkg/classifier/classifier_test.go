package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

type cancelFlag bool

func (c cancelFlag) Error() string  { return "platform request error" }
func (c cancelFlag) Canceled() bool { return bool(c) }

func TestClassify_APIFailurePreservesOrder(t *testing.T) {
	f := APIFailure{Details: []APIErrorDetail{
		{Code: codes.InvalidCardNumber, Description: "card"},
		{Code: codes.MissingCustomerID},
		{Code: codes.GatewayTimeout, Description: "slow"},
	}}

	got := Classify(f)

	require.Equal(t, []codes.ErrorDetail{
		{Code: codes.InvalidCardNumber, Message: "card"},
		{Code: codes.MissingCustomerID},
		{Code: codes.GatewayTimeout, Message: "slow"},
	}, got)
}

func TestClassify_APIFailureWithoutDetails(t *testing.T) {
	assert.Empty(t, Classify(APIFailure{}))
}

func TestClassify_Internal(t *testing.T) {
	tests := []struct {
		name     string
		internal InternalError
		want     codes.ErrorCode
	}{
		{name: "country code", internal: InvalidCountryCode, want: codes.InvalidCountryCode},
		{name: "authorize action renamed", internal: InvalidAuthorizeActionType, want: codes.InvalidAuthorizeAutoScheduleType},
		{name: "customer info renamed", internal: InvalidCustomerInfo, want: codes.MissingCustomerIDOrCustomerInformation},
		{name: "email renamed", internal: InvalidEmail, want: codes.InvalidEmailAddress},
		{name: "isd renamed", internal: InvalidISDNumber, want: codes.InvalidPhoneNumberCountryCode},
		{name: "card exists", internal: CardAlreadyExists, want: codes.CardAlreadyExists},
		{name: "enum value", internal: InvalidEnumValue, want: codes.InvalidEnumValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(NewInternal(tt.internal, ""))
			require.Equal(t, []codes.ErrorDetail{codes.NewDetail(tt.want)}, got)
		})
	}
}

func TestClassify_InternalTableCoversEnumeration(t *testing.T) {
	for e := InvalidCountryCode; e <= InvalidEnumValue; e++ {
		c, ok := e.PublicCode()
		require.True(t, ok, "internal code %d unmapped", int(e))
		require.True(t, c.Valid())
	}
}

func TestClassify_InternalUnrecognizedIsDropped(t *testing.T) {
	assert.Empty(t, Classify(NewInternal(InternalError(999), "future code")))
	assert.Empty(t, Classify(KnownFailure{Kind: KindInternal, Err: errors.New("no code at all")}))
	assert.Empty(t, Classify(KnownFailure{Kind: KindInternal}))
}

func TestClassify_KnownKinds(t *testing.T) {
	tests := []struct {
		name    string
		failure RawFailure
		want    codes.ErrorCode
	}{
		{name: "serialization", failure: KnownFailure{Kind: KindSerialization}, want: codes.Serialization},
		{name: "network", failure: KnownFailure{Kind: KindNetwork, Err: errors.New("connection reset")}, want: codes.Network},
		{name: "network context cancel", failure: KnownFailure{Kind: KindNetwork, Err: &url.Error{Op: "Post", URL: "https://api", Err: context.Canceled}}, want: codes.Cancel},
		{name: "network platform cancel", failure: KnownFailure{Kind: KindNetwork, Err: cancelFlag(true)}, want: codes.Cancel},
		{name: "network platform not cancel", failure: KnownFailure{Kind: KindNetwork, Err: cancelFlag(false)}, want: codes.Network},
		{name: "network deadline", failure: KnownFailure{Kind: KindNetwork, Err: context.DeadlineExceeded}, want: codes.Network},
		{name: "unknown kind", failure: KnownFailure{Kind: KindUnknown}, want: codes.Unknown},
		{name: "api kind", failure: KnownFailure{Kind: KindAPI}, want: codes.Unknown},
		{name: "opaque", failure: UnknownFailure{Err: errors.New("???")}, want: codes.Unknown},
		{name: "nil failure", failure: nil, want: codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, []codes.ErrorDetail{codes.NewDetail(tt.want)}, Classify(tt.failure))
		})
	}
}

func TestFromError(t *testing.T) {
	var syntaxErr error
	{
		var v map[string]any
		syntaxErr = json.Unmarshal([]byte("{"), &v)
	}
	api := APIFailure{Details: []APIErrorDetail{{Code: codes.Network}}}

	tests := []struct {
		name string
		err  error
		kind KnownKind
		want string
	}{
		{name: "nil", err: nil, want: "unknown"},
		{name: "wrapped api failure", err: fmt.Errorf("charge: %w", api), want: "api"},
		{name: "internal", err: fmt.Errorf("validate: %w", &InternalCodeError{Code: InvalidCurrency}), want: "known", kind: KindInternal},
		{name: "json", err: syntaxErr, want: "known", kind: KindSerialization},
		{name: "cancel", err: context.Canceled, want: "known", kind: KindNetwork},
		{name: "url error", err: &url.Error{Op: "Get", URL: "https://api", Err: errors.New("dial tcp: refused")}, want: "known", kind: KindNetwork},
		{name: "opaque", err: errors.New("boom"), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			switch f := got.(type) {
			case APIFailure:
				require.Equal(t, "api", tt.want)
			case KnownFailure:
				require.Equal(t, "known", tt.want)
				require.Equal(t, tt.kind, f.Kind)
			case UnknownFailure:
				require.Equal(t, "unknown", tt.want)
			default:
				t.Fatalf("unexpected variant %T", got)
			}
		})
	}
}

func TestFromError_InternalClassifiesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("build request: %w", &InternalCodeError{Code: InvalidEmail})
	got := Classify(FromError(err))
	require.Equal(t, []codes.ErrorDetail{codes.NewDetail(codes.InvalidEmailAddress)}, got)
}

func TestDecodeAPIFailure(t *testing.T) {
	body := []byte(`{"errors":[
		{"code":"invalid_card_number","description":"Card number is invalid"},
		{"code":"brand_new_gateway_code"},
		{"code":"missing_customer_id"}
	]}`)

	f, err := DecodeAPIFailure(body)
	require.NoError(t, err)
	require.Len(t, f.Details, 3)
	assert.Equal(t, codes.InvalidCardNumber, f.Details[0].Code)
	assert.Equal(t, "Card number is invalid", f.Details[0].Description)
	assert.Equal(t, codes.Unknown, f.Details[1].Code)
	assert.Equal(t, codes.MissingCustomerID, f.Details[2].Code)
	assert.Equal(t, "api failure: invalid_card_number, unknown, missing_customer_id", f.Error())

	_, err = DecodeAPIFailure([]byte("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode api failure")
}

func TestKnownKind_RoundTrip(t *testing.T) {
	for k := KindInternal; k <= KindAPI; k++ {
		back, ok := ParseKnownKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, back)
	}
	_, ok := ParseKnownKind("quantum")
	assert.False(t, ok)
}
