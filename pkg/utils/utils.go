package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// Layouts accepted for payment dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a payment date and truncates it to the calendar day it names.
// The returned time is midnight UTC of that day so dates compare by day only.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// MonthLabel returns the short month name for a payment date, e.g. "Jan".
// Unparseable dates yield an empty label.
func MonthLabel(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	return t.Format("Jan")
}

// FormatAmount renders a monetary value with two decimals
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
