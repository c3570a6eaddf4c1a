package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"number", `12.5`, "12.5"},
		{"numeric string", `"300"`, "300"},
		{"padded string", `" 42 "`, "42"},
		{"null", `null`, "0"},
		{"true", `true`, "1"},
		{"false", `false`, "0"},
		{"garbage string", `"twelve"`, "0"},
		{"empty string", `""`, "0"},
		{"negative", `-7`, "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n LooseNumber
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.Equal(t, tt.want, n.Decimal().String())
		})
	}
}

func TestDebtInput_AcceptsMixedTypes(t *testing.T) {
	var in DebtInput
	err := json.Unmarshal([]byte(`{
		"id": "a",
		"name": "Card",
		"balance": "1500.75",
		"apr": 19,
		"minPayment": null,
		"dueDay": "15"
	}`), &in)
	require.NoError(t, err)

	assert.True(t, in.Balance.Decimal().Equal(decimal.RequireFromString("1500.75")))
	assert.True(t, in.APR.Decimal().Equal(decimal.NewFromInt(19)))
	assert.True(t, in.MinPayment.Decimal().IsZero())
	assert.Equal(t, int64(15), in.DueDay.Decimal().IntPart())
}

func TestDebt_ToInput(t *testing.T) {
	d := Debt{
		ID:         "a",
		Name:       "Card",
		Balance:    decimal.RequireFromString("99.90"),
		APR:        decimal.RequireFromString("7.25"),
		MinPayment: decimal.NewFromInt(15),
		DueDay:     28,
		Notes:      "n",
	}

	in := d.ToInput()

	assert.Equal(t, "a", in.ID)
	assert.True(t, in.Balance.Decimal().Equal(d.Balance))
	assert.True(t, in.APR.Decimal().Equal(d.APR))
	assert.True(t, in.MinPayment.Decimal().Equal(d.MinPayment))
	assert.Equal(t, int64(28), in.DueDay.Decimal().IntPart())
}

func TestStrategy(t *testing.T) {
	assert.True(t, Avalanche.Valid())
	assert.True(t, Snowball.Valid())
	assert.False(t, Strategy("").Valid())
	assert.Equal(t, "Snowball (smallest balance first)", Snowball.Label())
	assert.Equal(t, "Avalanche (highest APR first)", Avalanche.Label())
}

func TestPlanSettings_Horizon(t *testing.T) {
	assert.Equal(t, DefaultHorizonMonths, PlanSettings{}.Horizon())
	assert.Equal(t, 12, PlanSettings{HorizonMonths: 12}.Horizon())
}
