package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "integer", value: "3200", want: "3 200,00"},
		{name: "fraction", value: "12.62", want: "12,62"},
		{name: "rounding", value: "37.391666", want: "37,39"},
		{name: "zero", value: "0", want: "0,00"},
		{name: "million", value: "1234567.5", want: "1 234 567,50"},
		{name: "negative", value: "-1500", want: "-1 500,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decimal.RequireFromString(tt.value)
			if got := Currency(v); got != tt.want {
				t.Errorf("Currency(%s): got %q want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCurrencyN_NoFraction(t *testing.T) {
	v := decimal.RequireFromString("1000")
	if got := CurrencyN(v, 0); got != "1 000" {
		t.Errorf("CurrencyN: got %q", got)
	}
}

func TestPluralDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{1, "1 день"},
		{2, "2 дня"},
		{4, "4 дня"},
		{5, "5 дней"},
		{11, "11 дней"},
		{12, "12 дней"},
		{14, "14 дней"},
		{21, "21 день"},
		{22, "22 дня"},
		{25, "25 дней"},
		{100, "100 дней"},
		{101, "101 день"},
		{111, "111 дней"},
		{0, "0 дней"},
	}

	for _, tt := range tests {
		if got := PluralDays(tt.days); got != tt.want {
			t.Errorf("PluralDays(%d): got %q want %q", tt.days, got, tt.want)
		}
	}
}

func TestFutureDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	if got := FutureDate(now, 0); got != "31.08.2026" {
		t.Errorf("FutureDate(0): got %q", got)
	}
	if got := FutureDate(now, 5); got != "05.09.2026" {
		t.Errorf("FutureDate(5): got %q", got)
	}
	if got := FutureDate(now, 123); got != "01.01.2027" {
		t.Errorf("FutureDate(123): got %q", got)
	}
}
