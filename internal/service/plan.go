package service

import (
	"errors"
	"time"
)

var ErrInvalidDuration = errors.New("duration must be '1m', '3m', '6m' or '12m'")

// PlanConfig is one entry of the fixed membership catalog. TotalCount is
// always 1: a subscription is a single future charge, not open-ended
// recurring billing.
type PlanConfig struct {
	Amount     int64 // paise
	Label      string
	Period     string
	Interval   int
	TotalCount int
	Months     int
}

var planCatalog = map[string]PlanConfig{
	"1m":  {Amount: 300000, Label: "1 Month Membership", Period: "monthly", Interval: 1, TotalCount: 1, Months: 1},
	"3m":  {Amount: 600000, Label: "3 Month Membership", Period: "monthly", Interval: 3, TotalCount: 1, Months: 3},
	"6m":  {Amount: 900000, Label: "6 Month Membership", Period: "monthly", Interval: 6, TotalCount: 1, Months: 6},
	"12m": {Amount: 1300000, Label: "1 Year Membership", Period: "monthly", Interval: 12, TotalCount: 1, Months: 12},
}

func PlanFor(duration string) (PlanConfig, error) {
	cfg, ok := planCatalog[duration]
	if !ok {
		return PlanConfig{}, ErrInvalidDuration
	}
	return cfg, nil
}

// EndsAt computes the membership end date: start plus the plan duration
// in calendar months.
func EndsAt(start time.Time, duration string) (time.Time, error) {
	cfg, err := PlanFor(duration)
	if err != nil {
		return time.Time{}, err
	}
	return addMonthsClamped(start, cfg.Months), nil
}

// addMonthsClamped adds calendar months, clamping to the last valid day
// of the target month. Jan 31 + 1 month is Feb 28 (29 in a leap year),
// not an overflow into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
