// Package model содержит доменные сущности демо-приложения коффибанка.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskID идентифицирует ежедневное задание пользователя.
type TaskID string

const (
	TaskLogin       TaskID = "login"
	TaskCoffee      TaskID = "coffee"
	TaskTransaction TaskID = "transaction"
)

// AvailableThemes перечисляет допустимые темы оформления.
var AvailableThemes = []string{"ocean", "forest", "sunset", "berry"}

// DefaultTheme применяется при выборе неизвестной темы.
const DefaultTheme = "ocean"

// Profile представляет единственный профиль пользователя демо-приложения.
// Профиль создаётся при старте процесса, живёт до его завершения и
// мутируется только операциями игрового движка.
type Profile struct {
	Nickname           string
	SelectedCategories []string
	Level              int
	XP                 int
	XPToNextLevel      int
	CoffeeCount        int
	SavingsAmount      int
	CashbackEarned     int
	Streak             int
	Achievements       []string
	CompletedTasks     map[TaskID]bool
	LastActivityDate   time.Time
	CardColor          string
	CardPhoto          string
	Theme              string
}

// NewProfile создаёт профиль с начальными значениями демо-приложения.
func NewProfile(now time.Time) *Profile {
	return &Profile{
		Level:         1,
		XPToNextLevel: 100,
		Achievements:  []string{},
		CompletedTasks: map[TaskID]bool{
			TaskLogin:       true,
			TaskCoffee:      false,
			TaskTransaction: false,
		},
		LastActivityDate: DateOnly(now),
		CardColor:        "#6366f1",
		Theme:            DefaultTheme,
	}
}

// HasAchievement сообщает, получено ли достижение с указанным идентификатором.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// DateOnly обрезает время до календарной даты (гранулярность — день).
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Deposit описывает вклад пользователя. Данные вкладов в демо статичны
// и не редактируются ядром.
type Deposit struct {
	ID               string
	Name             string
	Balance          decimal.Decimal
	Rate             decimal.Decimal
	TermMonths       int
	MonthsPassed     int
	InterestAccrued  decimal.Decimal
	MonthlyTopUp     decimal.Decimal
	NextPayoutInDays int
	NextPayoutAmount decimal.Decimal
	Capitalisation   bool
	Replenishment    bool
}

// SpendingCategory описывает категорию расходов в аналитике.
type SpendingCategory struct {
	ID      string
	Name    string
	Amount  decimal.Decimal
	Percent int
	Color   string
}

// WeeklyTrendPoint содержит расходы за неделю текущего и прошлого периода.
type WeeklyTrendPoint struct {
	Week     string
	Current  decimal.Decimal
	Previous decimal.Decimal
}

// Subscription описывает регулярное списание.
type Subscription struct {
	Name    string
	Amount  decimal.Decimal
	Renewal string
}

// Analytics содержит статичный снимок аналитики расходов за сессию.
type Analytics struct {
	Budget          decimal.Decimal
	TotalSpent      decimal.Decimal
	SavingsAmount   decimal.Decimal
	SavingsRate     int
	Categories      []SpendingCategory
	WeeklyTrend     []WeeklyTrendPoint
	Subscriptions   []Subscription
	Recommendations []string
}
