package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/mtbank/coffeebank/internal/gamification"
)

// rulesFile описывает формат TOML-файла с переопределениями правил.
// Указываются только изменяемые поля, остальные берутся из пресета.
// Таблицы level_bonus и streak_reward заменяются целиком, не поэлементно.
type rulesFile struct {
	CoffeePrice   *int `toml:"coffee_price"`
	SavingsLimit  *int `toml:"savings_limit"`
	SavingsGoal   *int `toml:"savings_goal"`
	CoffeeXP      *int `toml:"coffee_xp"`
	TransactionXP *int `toml:"transaction_xp"`
	CashbackMin   *int `toml:"cashback_min"`
	CashbackMax   *int `toml:"cashback_max"`

	LevelBonuses  map[string]int      `toml:"level_bonus"`
	StreakRewards []streakRewardEntry `toml:"streak_reward"`
}

type streakRewardEntry struct {
	Days    int    `toml:"days"`
	Message string `toml:"message"`
}

// LoadRules возвращает правила движка: выбранный пресет, поверх которого
// применяются переопределения из TOML-файла, если он указан.
func LoadRules(cfg *Config) (gamification.Rules, error) {
	rules, err := gamification.RulesForPreset(cfg.Preset)
	if err != nil {
		return gamification.Rules{}, err
	}

	if cfg.RulesFile == "" {
		return rules, nil
	}

	data, err := os.ReadFile(cfg.RulesFile)
	if err != nil {
		return gamification.Rules{}, fmt.Errorf("read rules file: %w", err)
	}

	var overrides rulesFile
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return gamification.Rules{}, fmt.Errorf("parse rules file: %w", err)
	}

	if err := applyOverrides(&rules, overrides); err != nil {
		return gamification.Rules{}, fmt.Errorf("rules file: %w", err)
	}

	if rules.CashbackMin > rules.CashbackMax {
		return gamification.Rules{}, fmt.Errorf("rules file: cashback_min %d exceeds cashback_max %d",
			rules.CashbackMin, rules.CashbackMax)
	}

	// Движок выдаёт награды за страйк, обходя таблицу по возрастанию.
	for i := 1; i < len(rules.StreakRewards); i++ {
		if rules.StreakRewards[i].Days <= rules.StreakRewards[i-1].Days {
			return gamification.Rules{}, fmt.Errorf("rules file: streak_reward days must be ascending, got %d after %d",
				rules.StreakRewards[i].Days, rules.StreakRewards[i-1].Days)
		}
	}

	return rules, nil
}

func applyOverrides(rules *gamification.Rules, overrides rulesFile) error {
	if overrides.CoffeePrice != nil {
		rules.CoffeePrice = *overrides.CoffeePrice
	}
	if overrides.SavingsLimit != nil {
		rules.SavingsLimit = *overrides.SavingsLimit
	}
	if overrides.SavingsGoal != nil {
		rules.SavingsGoal = *overrides.SavingsGoal
	}
	if overrides.CoffeeXP != nil {
		rules.CoffeeXP = *overrides.CoffeeXP
	}
	if overrides.TransactionXP != nil {
		rules.TransactionXP = *overrides.TransactionXP
	}
	if overrides.CashbackMin != nil {
		rules.CashbackMin = *overrides.CashbackMin
	}
	if overrides.CashbackMax != nil {
		rules.CashbackMax = *overrides.CashbackMax
	}

	if len(overrides.LevelBonuses) > 0 {
		bonuses := make(map[int]int, len(overrides.LevelBonuses))
		for key, bonus := range overrides.LevelBonuses {
			level, err := strconv.Atoi(key)
			if err != nil || level < 2 {
				return fmt.Errorf("level_bonus: invalid level %q", key)
			}
			bonuses[level] = bonus
		}
		rules.LevelBonuses = bonuses
	}

	if len(overrides.StreakRewards) > 0 {
		rewards := make([]gamification.StreakReward, 0, len(overrides.StreakRewards))
		for _, entry := range overrides.StreakRewards {
			rewards = append(rewards, gamification.StreakReward{
				Days:    entry.Days,
				Message: entry.Message,
			})
		}
		rules.StreakRewards = rewards
	}

	return nil
}
