package finance

import (
	"github.com/shopspring/decimal"

	"github.com/mtbank/coffeebank/internal/model"
)

// AnalyticsSummary — производные показатели аналитики расходов.
type AnalyticsSummary struct {
	SubscriptionCount int
	SubscriptionTotal decimal.Decimal
}

// ComputeAnalyticsSummary рассчитывает сумму и число активных подписок.
// Остальные поля аналитики отображаются без пересчёта.
func ComputeAnalyticsSummary(a model.Analytics) AnalyticsSummary {
	summary := AnalyticsSummary{SubscriptionCount: len(a.Subscriptions)}
	for _, sub := range a.Subscriptions {
		summary.SubscriptionTotal = summary.SubscriptionTotal.Add(sub.Amount)
	}
	return summary
}

// TrendBarWidth возвращает ширину столбца недельного тренда в процентах
// от максимума серии: round(100 × value / max), 0 при нулевом максимуме.
func TrendBarWidth(value, max decimal.Decimal) int {
	if max.IsZero() {
		return 0
	}
	return int(value.Div(max).Mul(hundred).Round(0).IntPart())
}

// TrendMax возвращает максимум среди текущих и прошлых значений серии.
func TrendMax(points []model.WeeklyTrendPoint) decimal.Decimal {
	max := decimal.Zero
	for _, p := range points {
		if p.Current.GreaterThan(max) {
			max = p.Current
		}
		if p.Previous.GreaterThan(max) {
			max = p.Previous
		}
	}
	return max
}
