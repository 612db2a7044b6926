// Package gamification реализует игровой движок демо-приложения:
// начисление опыта, уровни, страйки и достижения.
package gamification

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mtbank/coffeebank/internal/model"
)

// ErrLimitExceeded возвращается при попытке покупки, превышающей
// лимит сберегательного счёта. Состояние профиля при этом не меняется.
var ErrLimitExceeded = errors.New("savings limit exceeded")

// achievementNames — отображаемые названия веховых достижений.
var achievementNames = map[string]string{
	"first_coffee":  "Первая чашка",
	"coffee_lover":  "Любитель кофе",
	"coffee_master": "Мастер кофе",
	"week_streak":   "Неделя страйка",
	"month_streak":  "Месяц страйка",
}

// Engine применяет правила игрового слоя к профилю пользователя.
// Каждая операция атомарна: либо применяются все эффекты, либо ни одного.
// Движок не владеет профилем и не синхронизирует доступ к нему —
// это обязанность вызывающего слоя.
type Engine struct {
	rules   Rules
	randInt func(n int) int
}

// NewEngine создаёт движок с указанными правилами.
func NewEngine(rules Rules) *Engine {
	return &Engine{
		rules:   rules,
		randInt: rand.Intn,
	}
}

// Rules возвращает действующие правила движка.
func (e *Engine) Rules() Rules {
	return e.rules
}

// CompleteSetup завершает онбординг: фиксирует никнейм и категории,
// выдаёт стартовое достижение. Валидация никнейма выполняется до вызова.
func (e *Engine) CompleteSetup(p *model.Profile, nickname string, categories []string) []Event {
	p.Nickname = nickname
	p.SelectedCategories = categories
	e.addAchievement(p, "first_setup")

	return []Event{newEvent(EventWelcome, SeveritySuccess, "Добро пожаловать в МТБанк! 🎉")}
}

// BuyCoffee регистрирует покупку кофе: чашка, пополнение сбережений,
// опыт, задание и достижения. При превышении лимита сбережений
// возвращает ErrLimitExceeded без каких-либо изменений состояния.
func (e *Engine) BuyCoffee(p *model.Profile) ([]Event, error) {
	// Проверка лимита и начисление читают один и тот же снимок состояния.
	if p.SavingsAmount+e.rules.CoffeePrice > e.rules.SavingsLimit {
		return nil, ErrLimitExceeded
	}

	p.CoffeeCount++
	p.SavingsAmount += e.rules.CoffeePrice
	p.XP += e.rules.CoffeeXP

	events := e.checkLevelUp(p)

	p.CompletedTasks[model.TaskCoffee] = true

	purchase := newEvent(EventPurchase, SeveritySuccess,
		fmt.Sprintf("Кофе куплен! %d BYN переведены на сберегательный счет ☕", e.rules.CoffeePrice))
	purchase.Amount = e.rules.CoffeePrice
	events = append(events, purchase)

	events = append(events, e.checkAchievements(p)...)
	return events, nil
}

// RecordTransaction регистрирует синтетическую транзакцию для демо:
// задание, опыт и случайный кешбэк.
func (e *Engine) RecordTransaction(p *model.Profile) []Event {
	p.CompletedTasks[model.TaskTransaction] = true
	p.XP += e.rules.TransactionXP

	cashback := e.rules.CashbackMin + e.randInt(e.rules.CashbackMax-e.rules.CashbackMin+1)
	p.CashbackEarned += cashback

	events := e.checkLevelUp(p)

	tx := newEvent(EventTransaction, SeveritySuccess, "Транзакция совершена! Получен кешбэк! 💰")
	tx.Amount = cashback
	return append(events, tx)
}

// AdvanceDay фиксирует активность за календарный день и пересчитывает страйк.
// Повторный вызов в тот же день не меняет страйк; разрыв ровно в один день
// продлевает его, больший разрыв обнуляет.
func (e *Engine) AdvanceDay(p *model.Profile, now time.Time) []Event {
	today := model.DateOnly(now)
	yesterday := today.AddDate(0, 0, -1)
	previous := model.DateOnly(p.LastActivityDate)

	switch {
	case previous.Equal(yesterday):
		p.Streak++
	case !previous.Equal(today):
		p.Streak = 0
	}

	p.LastActivityDate = today

	var events []Event
	for _, reward := range e.rules.StreakRewards {
		if p.Streak < reward.Days {
			continue
		}
		if !e.addAchievement(p, fmt.Sprintf("streak_%d", reward.Days)) {
			continue
		}
		ev := newEvent(EventStreakReward, SeveritySuccess, reward.Message)
		ev.Achievement = fmt.Sprintf("streak_%d", reward.Days)
		events = append(events, ev)
	}

	return append(events, e.checkAchievements(p)...)
}

// ResetDailyTasks сбрасывает ежедневные задания. Задание входа
// не сбрасывается: в демо оно всегда выполнено.
func (e *Engine) ResetDailyTasks(p *model.Profile) {
	p.CompletedTasks[model.TaskCoffee] = false
	p.CompletedTasks[model.TaskTransaction] = false
}

// checkLevelUp обрабатывает накопленный опыт. Цикл нужен для корректной
// обработки скачка сразу через несколько уровней: остаток опыта переносится,
// а порог растёт в полтора раза на каждом уровне.
func (e *Engine) checkLevelUp(p *model.Profile) []Event {
	var events []Event

	for p.XP >= p.XPToNextLevel {
		p.Level++
		p.XP -= p.XPToNextLevel
		p.XPToNextLevel = int(float64(p.XPToNextLevel) * e.rules.LevelMultiplier)

		ev := newEvent(EventLevelUp, SeveritySuccess,
			fmt.Sprintf("Поздравляем! Вы достигли уровня %d! 🎉", p.Level))
		ev.NewLevel = p.Level
		events = append(events, ev)

		e.addAchievement(p, fmt.Sprintf("level_%d", p.Level))

		if bonus, ok := e.rules.LevelBonuses[p.Level]; ok {
			p.CashbackEarned += bonus
			bonusEv := newEvent(EventBonus, SeveritySuccess,
				fmt.Sprintf("Бонус: +%d%% кешбэк на неделю!", bonus))
			bonusEv.Amount = bonus
			events = append(events, bonusEv)
		}
	}

	return events
}

// checkAchievements проверяет вехи по точному совпадению счётчиков.
// Счётчики двигаются только по одному шагу через операции движка,
// поэтому точное сравнение не пропускает вехи.
func (e *Engine) checkAchievements(p *model.Profile) []Event {
	type milestone struct {
		id  string
		hit bool
	}

	milestones := []milestone{
		{id: "first_coffee", hit: p.CoffeeCount == 1},
		{id: "coffee_lover", hit: p.CoffeeCount == 10},
		{id: "coffee_master", hit: p.CoffeeCount == 100},
		{id: "week_streak", hit: p.Streak == 7},
		{id: "month_streak", hit: p.Streak == 30},
	}

	var events []Event
	for _, m := range milestones {
		if !m.hit || !e.addAchievement(p, m.id) {
			continue
		}
		ev := newEvent(EventAchievement, SeveritySuccess,
			fmt.Sprintf("Новое достижение: %s! 🏆", achievementNames[m.id]))
		ev.Achievement = m.id
		events = append(events, ev)
	}

	return events
}

// addAchievement добавляет достижение, если оно ещё не получено.
// Возвращает true при первом получении. Набор достижений только растёт.
func (e *Engine) addAchievement(p *model.Profile, id string) bool {
	if p.HasAchievement(id) {
		return false
	}
	p.Achievements = append(p.Achievements, id)
	return true
}
