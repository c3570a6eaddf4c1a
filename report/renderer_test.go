package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-planner/domain"
)

func scheduleOf(months int, paidOff bool) domain.ScheduleResult {
	start := domain.YearMonth{Year: 2024, Month: time.January}
	result := domain.ScheduleResult{Rows: []domain.ScheduleRow{}, Months: months}
	for i := 0; i < months; i++ {
		result.Rows = append(result.Rows, domain.ScheduleRow{
			Month:        start.AddMonths(i),
			InterestByID: map[string]decimal.Decimal{"a": decimal.RequireFromString("1.50")},
			PaymentByID:  map[string]decimal.Decimal{"a": decimal.NewFromInt(25)},
			Remaining:    decimal.NewFromInt(int64(1000 - i*10)),
		})
	}
	if paidOff {
		last := start.AddMonths(months - 1)
		result.PayoffMonth = &last
	}
	return result
}

func sampleInput(schedule domain.ScheduleResult) Input {
	return Input{
		Profile: domain.Profile{Org: "Acme", User: "sam"},
		Settings: domain.PlanSettings{
			Strategy:      domain.Avalanche,
			ExtraMonthly:  decimal.NewFromInt(50),
			StartMonth:    domain.YearMonth{Year: 2024, Month: time.January},
			HorizonMonths: 240,
			Currency:      "EUR",
		},
		Debts: []domain.Debt{{
			ID:         "a",
			Name:       "Card",
			Balance:    decimal.NewFromInt(1000),
			APR:        decimal.RequireFromString("18"),
			MinPayment: decimal.NewFromInt(25),
			DueDay:     3,
		}},
		Totals: domain.PortfolioTotals{
			TotalBalance: decimal.NewFromInt(1000),
			TotalMinimum: decimal.NewFromInt(25),
		},
		Schedule:    schedule,
		GeneratedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderText_TruncatesSchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer().RenderText(&buf, sampleInput(scheduleOf(30, true))))
	out := buf.String()

	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Avalanche (highest APR first)")
	assert.Contains(t, out, "50.00 EUR")
	assert.Contains(t, out, "2026-06 (30 months)")
	assert.Contains(t, out, "18.00%")
	assert.Contains(t, out, "2025-12")
	assert.NotContains(t, out, "2026-01")
	assert.Contains(t, out, "... 30 months simulated in total")
	assert.NotContains(t, strings.SplitN(out, "Schedule (first", 2)[1], "2026-06")
}

func TestRenderText_HorizonExceeded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer().RenderText(&buf, sampleInput(scheduleOf(240, false))))

	assert.Contains(t, buf.String(), "Not within 240 months")
}

func TestRenderText_Empty(t *testing.T) {
	in := sampleInput(domain.ScheduleResult{Rows: []domain.ScheduleRow{}})
	in.Debts = nil
	in.Profile = domain.Profile{}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().RenderText(&buf, in))
	out := buf.String()

	assert.Contains(t, out, "(no debts)")
	assert.Contains(t, out, "Enter balances to see payoff plan.")
	assert.Contains(t, out, "- (-)")
	assert.NotContains(t, out, "simulated in total")
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer().RenderCSV(&buf, sampleInput(scheduleOf(30, true))))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 31, "header plus every simulated month")
	assert.Equal(t, []string{"month", "interest", "paid", "remaining", "payment:Card"}, records[0])
	assert.Equal(t, []string{"2024-01", "1.50", "25.00", "1000.00", "25.00"}, records[1])
	assert.Equal(t, "2026-06", records[30][0])
}

func TestRenderCSV_PaymentColumnsAreDistinct(t *testing.T) {
	in := sampleInput(scheduleOf(1, true))
	in.Debts = []domain.Debt{
		{ID: "a", Name: "Card"},
		{ID: "b", Name: ""},
		{ID: "c", Name: "Card"},
		{ID: "d", Name: "Loan"},
		{ID: "e"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().RenderCSV(&buf, in))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	header := records[0]
	assert.Equal(t, []string{
		"month", "interest", "paid", "remaining",
		"payment:Card (a)", "payment:b", "payment:Card (c)", "payment:Loan", "payment:e",
	}, header)

	seen := map[string]bool{}
	for _, col := range header {
		assert.False(t, seen[col], "duplicate column %q", col)
		seen[col] = true
	}
	assert.Equal(t, []string{"2024-01", "1.50", "25.00", "1000.00", "25.00", "0.00", "0.00", "0.00", "0.00"}, records[1])
}

func TestPayoffLabel(t *testing.T) {
	assert.Equal(t, "Not within 36 months", PayoffLabel(domain.ScheduleResult{}, 36))

	month := domain.YearMonth{Year: 2025, Month: time.March}
	assert.Equal(t, "2025-03 (15 months)", PayoffLabel(domain.ScheduleResult{PayoffMonth: &month, Months: 15}, 240))
}
