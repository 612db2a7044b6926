// Package view собирает готовые к отображению представления экранов
// из профиля и финансовых агрегатов. Все функции — чистые проекции:
// повторный вызов с теми же данными даёт тот же результат.
package view

import (
	"fmt"
	"time"

	"github.com/mtbank/coffeebank/internal/finance"
	"github.com/mtbank/coffeebank/internal/format"
	"github.com/mtbank/coffeebank/internal/model"
)

// Task — строка списка ежедневных заданий.
type Task struct {
	ID        model.TaskID `json:"id"`
	Completed bool         `json:"completed"`
	Glyph     string       `json:"glyph"`
}

// Dashboard — представление главного экрана и профиля.
type Dashboard struct {
	Nickname          string   `json:"nickname"`
	Level             int      `json:"level"`
	XP                int      `json:"xp"`
	XPToNextLevel     int      `json:"xp_to_next_level"`
	XPPercent         float64  `json:"xp_percent"`
	CoffeeCount       int      `json:"coffee_count"`
	Cashback          string   `json:"cashback"`
	Savings           string   `json:"savings"`
	SavingsPercent    float64  `json:"savings_percent"`
	Streak            int      `json:"streak"`
	StreakLabel       string   `json:"streak_label"`
	AchievementsCount int      `json:"achievements_count"`
	Achievements      []string `json:"achievements"`
	Theme             string   `json:"theme"`
	Tasks             []Task   `json:"tasks"`
}

// DepositCard — карточка вклада.
type DepositCard struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Meta             string `json:"meta"`
	Rate             string `json:"rate"`
	Balance          string `json:"balance"`
	InterestAccrued  string `json:"interest_accrued"`
	MonthlyAccrual   string `json:"monthly_accrual"`
	TopUp            string `json:"top_up"`
	Progress         int    `json:"progress"`
	ProgressLabel    string `json:"progress_label"`
	NextPayoutWhen   string `json:"next_payout_when"`
	NextPayoutAmount string `json:"next_payout_amount"`
	NextPayoutDate   string `json:"next_payout_date"`
}

// Payout — строка графика ближайших выплат.
type Payout struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// DepositsSummary — сводные показатели экрана вкладов.
type DepositsSummary struct {
	TotalBalance    string `json:"total_balance"`
	MonthlyIncome   string `json:"monthly_income"`
	AverageRate     string `json:"average_rate"`
	AccruedInterest string `json:"accrued_interest"`
	NextPayout      string `json:"next_payout"`
}

// Deposits — представление экрана вкладов.
type Deposits struct {
	Summary         DepositsSummary `json:"summary"`
	Items           []DepositCard   `json:"items"`
	Payouts         []Payout        `json:"payouts"`
	Recommendations []string        `json:"recommendations"`
}

// CategoryRow — строка диаграммы расходов по категориям.
type CategoryRow struct {
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Percent int    `json:"percent"`
	Width   int    `json:"width"`
	Color   string `json:"color"`
}

// TrendRow — строка недельного тренда расходов.
type TrendRow struct {
	Week          string `json:"week"`
	Current       string `json:"current"`
	CurrentWidth  int    `json:"current_width"`
	Previous      string `json:"previous"`
	PreviousWidth int    `json:"previous_width"`
}

// SubscriptionRow — строка списка подписок.
type SubscriptionRow struct {
	Name    string `json:"name"`
	Renewal string `json:"renewal"`
	Amount  string `json:"amount"`
}

// Analytics — представление экрана аналитики расходов.
type Analytics struct {
	TotalSpent          string            `json:"total_spent"`
	Budget              string            `json:"budget"`
	SavingsRate         string            `json:"savings_rate"`
	SavingsAmount       string            `json:"savings_amount"`
	ActiveSubscriptions int               `json:"active_subscriptions"`
	SubscriptionTotal   string            `json:"subscription_total"`
	Categories          []CategoryRow     `json:"categories"`
	WeeklyTrend         []TrendRow        `json:"weekly_trend"`
	Subscriptions       []SubscriptionRow `json:"subscriptions"`
	Recommendations     []string          `json:"recommendations"`
}

// Card — представление кастомизируемой карты.
type Card struct {
	Nickname string `json:"nickname"`
	Color    string `json:"color"`
	Photo    string `json:"photo,omitempty"`
	HasPhoto bool   `json:"has_photo"`
}

// RenderTasks отображает задания с отметкой выполнения.
func RenderTasks(p *model.Profile) []Task {
	ordered := []model.TaskID{model.TaskLogin, model.TaskCoffee, model.TaskTransaction}

	tasks := make([]Task, 0, len(ordered))
	for _, id := range ordered {
		completed := p.CompletedTasks[id]
		glyph := ""
		if completed {
			glyph = "✓"
		}
		tasks = append(tasks, Task{ID: id, Completed: completed, Glyph: glyph})
	}
	return tasks
}

// RenderDashboard отображает главный экран по текущему профилю.
func RenderDashboard(p *model.Profile, savingsGoal int) Dashboard {
	xpPercent := 0.0
	if p.XPToNextLevel > 0 {
		xpPercent = float64(p.XP) / float64(p.XPToNextLevel) * 100
	}

	savingsPercent := 0.0
	if savingsGoal > 0 {
		savingsPercent = float64(p.SavingsAmount) / float64(savingsGoal) * 100
		if savingsPercent > 100 {
			savingsPercent = 100
		}
	}

	achievements := make([]string, len(p.Achievements))
	copy(achievements, p.Achievements)

	return Dashboard{
		Nickname:          p.Nickname,
		Level:             p.Level,
		XP:                p.XP,
		XPToNextLevel:     p.XPToNextLevel,
		XPPercent:         xpPercent,
		CoffeeCount:       p.CoffeeCount,
		Cashback:          fmt.Sprintf("%d BYN", p.CashbackEarned),
		Savings:           fmt.Sprintf("%d BYN", p.SavingsAmount),
		SavingsPercent:    savingsPercent,
		Streak:            p.Streak,
		StreakLabel:       fmt.Sprintf("%d дней", p.Streak),
		AchievementsCount: len(p.Achievements),
		Achievements:      achievements,
		Theme:             p.Theme,
		Tasks:             RenderTasks(p),
	}
}

// RenderDeposits отображает экран вкладов.
func RenderDeposits(deposits []model.Deposit, now time.Time) Deposits {
	summary := finance.ComputeDepositSummary(deposits)

	out := Deposits{
		Summary: DepositsSummary{
			TotalBalance:    format.Currency(summary.TotalBalance) + " BYN",
			MonthlyIncome:   format.Currency(summary.MonthlyIncome) + " BYN",
			AverageRate:     summary.AverageRate.StringFixed(1) + "%",
			AccruedInterest: format.Currency(summary.AccruedInterest) + " BYN",
		},
		Recommendations: finance.DepositRecommendations(deposits, now),
	}

	if summary.NearestPayout >= 0 {
		nearest := deposits[summary.NearestPayout]
		when := format.PluralDays(nearest.NextPayoutInDays)
		if nearest.NextPayoutInDays == 0 {
			when = "сегодня"
		}
		out.Summary.NextPayout = fmt.Sprintf("%s BYN • %s", format.Currency(nearest.NextPayoutAmount), when)
	}

	for _, d := range deposits {
		out.Items = append(out.Items, renderDepositCard(d, now))
	}

	for _, d := range finance.SortedByPayout(deposits) {
		out.Payouts = append(out.Payouts, Payout{
			Name:   d.Name,
			Date:   format.FutureDate(now, d.NextPayoutInDays),
			Amount: format.Currency(d.NextPayoutAmount) + " BYN",
		})
	}

	return out
}

func renderDepositCard(d model.Deposit, now time.Time) DepositCard {
	meta := "Без капитализации"
	if d.Capitalisation {
		meta = "Капитализация"
	}
	if d.Replenishment {
		meta += " · Пополнение доступно"
	} else {
		meta += " · Без пополнения"
	}

	topUp := "—"
	if !d.MonthlyTopUp.IsZero() {
		topUp = format.Currency(d.MonthlyTopUp) + " BYN/мес"
	}

	when := "Сегодня"
	if d.NextPayoutInDays != 0 {
		when = "Через " + format.PluralDays(d.NextPayoutInDays)
	}

	return DepositCard{
		ID:               d.ID,
		Name:             d.Name,
		Meta:             meta,
		Rate:             d.Rate.StringFixed(1) + "%",
		Balance:          format.Currency(d.Balance) + " BYN",
		InterestAccrued:  format.Currency(d.InterestAccrued) + " BYN",
		MonthlyAccrual:   "~" + format.Currency(finance.MonthlyAccrual(d)) + " BYN",
		TopUp:            topUp,
		Progress:         finance.Progress(d),
		ProgressLabel:    fmt.Sprintf("%d из %d мес.", d.MonthsPassed, d.TermMonths),
		NextPayoutWhen:   when,
		NextPayoutAmount: format.Currency(d.NextPayoutAmount) + " BYN",
		NextPayoutDate:   format.FutureDate(now, d.NextPayoutInDays),
	}
}

// RenderAnalytics отображает экран аналитики расходов.
func RenderAnalytics(a model.Analytics) Analytics {
	summary := finance.ComputeAnalyticsSummary(a)

	out := Analytics{
		TotalSpent:          format.Currency(a.TotalSpent) + " BYN",
		Budget:              format.Currency(a.Budget) + " BYN",
		SavingsRate:         fmt.Sprintf("%d%%", a.SavingsRate),
		SavingsAmount:       format.Currency(a.SavingsAmount) + " BYN",
		ActiveSubscriptions: summary.SubscriptionCount,
		SubscriptionTotal:   format.Currency(summary.SubscriptionTotal) + " BYN",
		Recommendations:     a.Recommendations,
	}

	for _, c := range a.Categories {
		out.Categories = append(out.Categories, CategoryRow{
			Name:    c.Name,
			Amount:  format.Currency(c.Amount) + " BYN",
			Percent: c.Percent,
			Width:   c.Percent,
			Color:   c.Color,
		})
	}

	max := finance.TrendMax(a.WeeklyTrend)
	for _, p := range a.WeeklyTrend {
		out.WeeklyTrend = append(out.WeeklyTrend, TrendRow{
			Week:          p.Week,
			Current:       format.Currency(p.Current) + " BYN",
			CurrentWidth:  finance.TrendBarWidth(p.Current, max),
			Previous:      format.Currency(p.Previous) + " BYN",
			PreviousWidth: finance.TrendBarWidth(p.Previous, max),
		})
	}

	for _, s := range a.Subscriptions {
		out.Subscriptions = append(out.Subscriptions, SubscriptionRow{
			Name:    s.Name,
			Renewal: "Списание " + s.Renewal,
			Amount:  format.Currency(s.Amount) + " BYN",
		})
	}

	return out
}

// RenderCard отображает превью кастомизируемой карты.
func RenderCard(p *model.Profile) Card {
	return Card{
		Nickname: p.Nickname,
		Color:    p.CardColor,
		Photo:    p.CardPhoto,
		HasPhoto: p.CardPhoto != "",
	}
}
