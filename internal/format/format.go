// Package format содержит функции форматирования значений для отображения.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// nbsp — неразрывный пробел, разделитель групп разрядов в ru-RU.
const nbsp = "\u00a0"

// Currency форматирует денежную сумму с двумя знаками после запятой:
// разряды разделяются неразрывным пробелом, дробная часть — запятой.
func Currency(v decimal.Decimal) string {
	return CurrencyN(v, 2)
}

// CurrencyN форматирует денежную сумму с указанным числом знаков после запятой.
func CurrencyN(v decimal.Decimal, fractionDigits int) string {
	s := v.StringFixed(int32(fractionDigits))

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, nbsp)
	if fracPart != "" {
		out += "," + fracPart
	}
	if negative {
		out = "-" + out
	}
	return out
}

// PluralDays согласует слово «день» с числительным: 1 день, 2 дня, 5 дней.
func PluralDays(days int) string {
	abs := days
	if abs < 0 {
		abs = -abs
	}

	lastTwo := abs % 100
	if lastTwo >= 11 && lastTwo <= 14 {
		return fmt.Sprintf("%d дней", days)
	}

	switch abs % 10 {
	case 1:
		return fmt.Sprintf("%d день", days)
	case 2, 3, 4:
		return fmt.Sprintf("%d дня", days)
	default:
		return fmt.Sprintf("%d дней", days)
	}
}

// FutureDate возвращает дату через указанное число дней в формате дд.мм.гггг.
func FutureDate(now time.Time, daysFromNow int) string {
	return now.AddDate(0, 0, daysFromNow).Format("02.01.2006")
}
