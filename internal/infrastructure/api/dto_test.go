package api

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequest_CodAmountSerializesAsNumber(t *testing.T) {
	req := CreateOrderRequest{
		ExpectedCodAmount: Amount{Decimal: decimal.RequireFromString("12.5")},
	}

	raw, err := json.Marshal(req)

	require.NoError(t, err)
	assert.Contains(t, string(raw), `"expectedCodAmount":12.5`)
	assert.NotContains(t, string(raw), `"expectedCodAmount":"`)
}

func TestCreateOrderRequest_ZeroCodAmountSerializesAsZero(t *testing.T) {
	raw, err := json.Marshal(CreateOrderRequest{})

	require.NoError(t, err)
	assert.Contains(t, string(raw), `"expectedCodAmount":0`)
}
