package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LooseNumber keeps the raw text of a numeric field as the client sent it.
// JSON numbers, numeric strings, booleans and null are all accepted; anything
// that does not parse as a number reads back as zero.
type LooseNumber string

func (n *LooseNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
	case bytes.Equal(b, []byte("true")):
		*n = "1"
	case bytes.Equal(b, []byte("false")):
		*n = "0"
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = ""
			return nil
		}
		*n = LooseNumber(s)
	default:
		*n = LooseNumber(b)
	}
	return nil
}

func (n LooseNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Decimal())
}

// Decimal returns the parsed value, or zero when the text is not a number.
// Exponent notation goes through float64, so its magnitude stays within
// float range; values beyond it come back as ±1e309.
func (n LooseNumber) Decimal() decimal.Decimal {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return decimal.Zero
	}
	if strings.ContainsAny(s, "eE") {
		return parseExponent(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseExponent(s string) decimal.Decimal {
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case math.IsInf(f, 1):
		return outOfRange
	case math.IsInf(f, -1):
		return outOfRange.Neg()
	case err != nil, math.IsNaN(f):
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

var outOfRange = decimal.New(1, 309)

func NumberFrom(d decimal.Decimal) LooseNumber {
	return LooseNumber(d.String())
}

// DebtInput is a debt as received from a client, before normalization.
type DebtInput struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Balance    LooseNumber `json:"balance"`
	APR        LooseNumber `json:"apr"`
	MinPayment LooseNumber `json:"minPayment"`
	DueDay     LooseNumber `json:"dueDay"`
	Notes      string      `json:"notes"`
}

type SettingsInput struct {
	Strategy      string      `json:"strategy"`
	ExtraMonthly  LooseNumber `json:"extraMonthly"`
	StartMonth    string      `json:"startMonth"`
	HorizonMonths int         `json:"horizonMonths"`
	Currency      string      `json:"currency"`
}

type PlanInput struct {
	Debts    []DebtInput   `json:"debts"`
	Settings SettingsInput `json:"settings"`
}

// SettingsPatch carries only the settings fields a client wants to change.
type SettingsPatch struct {
	Strategy      *string      `json:"strategy,omitempty"`
	ExtraMonthly  *LooseNumber `json:"extraMonthly,omitempty"`
	StartMonth    *string      `json:"startMonth,omitempty"`
	HorizonMonths *int         `json:"horizonMonths,omitempty"`
	Currency      *string      `json:"currency,omitempty"`
}

type DebtPatch struct {
	Name       *string      `json:"name,omitempty"`
	Balance    *LooseNumber `json:"balance,omitempty"`
	APR        *LooseNumber `json:"apr,omitempty"`
	MinPayment *LooseNumber `json:"minPayment,omitempty"`
	DueDay     *LooseNumber `json:"dueDay,omitempty"`
	Notes      *string      `json:"notes,omitempty"`
}

// ToInput converts a stored debt back into the raw input shape so that edits
// can go through the same normalization as new debts.
func (d Debt) ToInput() DebtInput {
	return DebtInput{
		ID:         d.ID,
		Name:       d.Name,
		Balance:    NumberFrom(d.Balance),
		APR:        NumberFrom(d.APR),
		MinPayment: NumberFrom(d.MinPayment),
		DueDay:     NumberFrom(decimal.NewFromInt(int64(d.DueDay))),
		Notes:      d.Notes,
	}
}

func (s PlanSettings) ToInput() SettingsInput {
	return SettingsInput{
		Strategy:      string(s.Strategy),
		ExtraMonthly:  NumberFrom(s.ExtraMonthly),
		StartMonth:    s.StartMonth.String(),
		HorizonMonths: s.HorizonMonths,
		Currency:      s.Currency,
	}
}
