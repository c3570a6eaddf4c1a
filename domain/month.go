package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const yearMonthLayout = "2006-01"

// YearMonth is a calendar month without a day, written as YYYY-MM.
type YearMonth struct {
	Year  int
	Month time.Month
}

func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("could not parse month '%s': %w", s, err)
	}
	return NewYearMonth(t), nil
}

// AddMonths moves the month forward (or backward for negative n), rolling the year.
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return NewYearMonth(t)
}

func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(ym.String())
}

func (ym *YearMonth) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("month must be a YYYY-MM string: %w", err)
	}
	parsed, err := ParseYearMonth(s)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}
