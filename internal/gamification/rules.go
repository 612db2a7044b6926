package gamification

import "fmt"

// StreakReward описывает награду за достижение порога страйка.
// Пороги в таблице должны идти по возрастанию: при большом скачке страйка
// все непройденные пороги выдаются за один вызов.
type StreakReward struct {
	Days    int
	Message string
}

// Rules содержит настраиваемые таблицы и константы игрового движка.
type Rules struct {
	CoffeePrice     int
	SavingsLimit    int
	SavingsGoal     int
	CoffeeXP        int
	TransactionXP   int
	CashbackMin     int
	CashbackMax     int
	InitialXPToNext int
	LevelMultiplier float64
	LevelBonuses    map[int]int
	StreakRewards   []StreakReward
}

// Имена пресетов правил. Исходное приложение существовало в двух вариантах,
// различавшихся только таблицей наград за страйк; оба сохранены.
const (
	PresetClassic = "classic"
	PresetBoosted = "boosted"
)

// ClassicRules возвращает правила с базовой таблицей наград за страйк.
func ClassicRules() Rules {
	r := baseRules()
	r.StreakRewards = []StreakReward{
		{Days: 7, Message: "Неделя страйка! +2% кешбэк"},
		{Days: 14, Message: "Две недели! +5% кешбэк"},
		{Days: 30, Message: "Месяц страйка! +10% кешбэк"},
		{Days: 100, Message: "100 дней! +20% кешбэк"},
		{Days: 365, Message: "Год страйка! +50% кешбэк и подарок!"},
	}
	return r
}

// BoostedRules возвращает правила с увеличенными наградами за страйк.
func BoostedRules() Rules {
	r := baseRules()
	r.StreakRewards = []StreakReward{
		{Days: 7, Message: "Неделя страйка! +5% кешбэк"},
		{Days: 14, Message: "Две недели! +10% кешбэк"},
		{Days: 30, Message: "Месяц страйка! +20% кешбэк"},
		{Days: 100, Message: "100 дней! +40% кешбэк"},
		{Days: 365, Message: "Год страйка! +100% кешбэк и подарок!"},
	}
	return r
}

// RulesForPreset возвращает правила по имени пресета.
func RulesForPreset(name string) (Rules, error) {
	switch name {
	case "", PresetClassic:
		return ClassicRules(), nil
	case PresetBoosted:
		return BoostedRules(), nil
	default:
		return Rules{}, fmt.Errorf("unknown rules preset: %q", name)
	}
}

func baseRules() Rules {
	return Rules{
		CoffeePrice:     3,
		SavingsLimit:    10000,
		SavingsGoal:     1000,
		CoffeeXP:        10,
		TransactionXP:   15,
		CashbackMin:     10,
		CashbackMax:     59,
		InitialXPToNext: 100,
		LevelMultiplier: 1.5,
		LevelBonuses: map[int]int{
			2:  50,
			3:  100,
			5:  200,
			10: 500,
		},
	}
}
