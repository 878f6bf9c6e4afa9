package codes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_EveryCodeHasUniqueSymbol(t *testing.T) {
	seen := make(map[string]ErrorCode, len(Registry))
	for _, c := range Registry {
		require.True(t, c.Valid(), "code %d", int(c))
		sym := c.Symbol()
		require.NotEmpty(t, sym, "code %d has no symbol", int(c))
		if prev, dup := seen[sym]; dup {
			t.Fatalf("symbol %q used by %d and %d", sym, int(prev), int(c))
		}
		seen[sym] = c
	}
	assert.Len(t, Registry, int(codeCount)-1)
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   ErrorCode
		ok     bool
	}{
		{name: "card number", symbol: "invalid_card_number", want: InvalidCardNumber, ok: true},
		{name: "cancel", symbol: "cancel", want: Cancel, ok: true},
		{name: "unknown symbol", symbol: "no_such_code", ok: false},
		{name: "empty", symbol: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSymbol(tt.symbol)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestErrorCode_InvalidValues(t *testing.T) {
	for _, c := range []ErrorCode{0, -1, codeCount, codeCount + 10} {
		assert.False(t, c.Valid())
		assert.Empty(t, c.Symbol())
		assert.Contains(t, c.String(), "ErrorCode(")
		_, err := c.MarshalText()
		assert.Error(t, err)
	}
}

func TestErrorDetail_JSON(t *testing.T) {
	d := NewDetail(GatewayTimeout).WithMessage("upstream took too long")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"gateway_timeout","message":"upstream took too long"}`, string(data))

	var back ErrorDetail
	require.NoError(t, json.Unmarshal([]byte(`{"code":"permission_denied"}`), &back))
	assert.Equal(t, PermissionDenied, back.Code)
	assert.False(t, back.HasMessage())

	err = json.Unmarshal([]byte(`{"code":"bogus"}`), &back)
	assert.Error(t, err)
}

func TestErrorDetail_WithMessageCopies(t *testing.T) {
	base := NewDetail(Network)
	withMsg := base.WithMessage("offline")

	assert.False(t, base.HasMessage())
	assert.Equal(t, "offline", withMsg.Message)
	assert.Equal(t, base.Code, withMsg.Code)
}
