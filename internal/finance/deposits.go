// Package finance содержит чистые функции расчёта агрегатов по вкладам
// и аналитике расходов.
package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mtbank/coffeebank/internal/format"
	"github.com/mtbank/coffeebank/internal/model"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// DepositSummary — сводка по всем вкладам пользователя.
type DepositSummary struct {
	TotalBalance    decimal.Decimal
	MonthlyIncome   decimal.Decimal
	AccruedInterest decimal.Decimal
	AverageRate     decimal.Decimal
	// NearestPayout — индекс вклада с ближайшей выплатой в исходном
	// списке; -1, если вкладов нет. При равенстве сроков выбирается
	// первый по порядку.
	NearestPayout int
}

// ComputeDepositSummary рассчитывает сводку по списку вкладов.
// Для пустого списка все суммы нулевые, средняя ставка — ноль.
func ComputeDepositSummary(deposits []model.Deposit) DepositSummary {
	summary := DepositSummary{NearestPayout: -1}

	for i, d := range deposits {
		summary.TotalBalance = summary.TotalBalance.Add(d.Balance)
		summary.MonthlyIncome = summary.MonthlyIncome.Add(MonthlyAccrual(d))
		summary.AccruedInterest = summary.AccruedInterest.Add(d.InterestAccrued)
		summary.AverageRate = summary.AverageRate.Add(d.Rate)

		if summary.NearestPayout < 0 || d.NextPayoutInDays < deposits[summary.NearestPayout].NextPayoutInDays {
			summary.NearestPayout = i
		}
	}

	if len(deposits) > 0 {
		summary.AverageRate = summary.AverageRate.Div(decimal.NewFromInt(int64(len(deposits))))
	}

	return summary
}

// MonthlyAccrual возвращает месячное начисление процентов по вкладу:
// balance × (rate/100) / 12.
func MonthlyAccrual(d model.Deposit) decimal.Decimal {
	return d.Balance.Mul(d.Rate).Div(hundred).Div(monthsInYear)
}

// Progress возвращает прогресс вклада в процентах от срока,
// округлённый и ограниченный диапазоном [0, 100].
// Для нулевого срока возвращает 0, а не делит на ноль.
func Progress(d model.Deposit) int {
	if d.TermMonths == 0 {
		return 0
	}
	p := int(decimal.NewFromInt(int64(d.MonthsPassed)).
		Div(decimal.NewFromInt(int64(d.TermMonths))).
		Mul(hundred).
		Round(0).
		IntPart())
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// SortedByPayout возвращает копию списка вкладов, отсортированную
// по близости следующей выплаты. Сортировка стабильна: при равных
// сроках сохраняется исходный порядок.
func SortedByPayout(deposits []model.Deposit) []model.Deposit {
	sorted := make([]model.Deposit, len(deposits))
	copy(sorted, deposits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NextPayoutInDays < sorted[j].NextPayoutInDays
	})
	return sorted
}

// progressRatio — доля пройденного срока; 0 при нулевом сроке.
func progressRatio(d model.Deposit) decimal.Decimal {
	if d.TermMonths == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(d.MonthsPassed)).Div(decimal.NewFromInt(int64(d.TermMonths)))
}

// DepositRecommendations формирует три рекомендации: по самому медленному
// вкладу, по вкладу с лучшей ставкой и по ближайшей выплате.
// При равенстве показателей выбирается первый вклад по порядку.
func DepositRecommendations(deposits []model.Deposit, now time.Time) []string {
	if len(deposits) == 0 {
		return nil
	}

	slowest := deposits[0]
	for _, d := range deposits[1:] {
		if progressRatio(d).LessThan(progressRatio(slowest)) {
			slowest = d
		}
	}

	highestRate := deposits[0]
	for _, d := range deposits[1:] {
		if d.Rate.GreaterThan(highestRate.Rate) {
			highestRate = d
		}
	}

	soonest := deposits[ComputeDepositSummary(deposits).NearestPayout]

	payoutWhen := format.PluralDays(soonest.NextPayoutInDays)
	if soonest.NextPayoutInDays == 0 {
		payoutWhen = "сегодня"
	}

	return []string{
		fmt.Sprintf("Пополните вклад «%s» на 200 BYN — вы ускорите накопление и приблизите цель по нему.", slowest.Name),
		fmt.Sprintf("Держите основную сумму на «%s»: ставка %s%% обеспечивает максимальный доход.", highestRate.Name, highestRate.Rate.StringFixed(1)),
		fmt.Sprintf("Через %s (%s) получите %s BYN по вкладу «%s».",
			payoutWhen,
			format.FutureDate(now, soonest.NextPayoutInDays),
			format.Currency(soonest.NextPayoutAmount),
			soonest.Name),
	}
}
