package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtbank/coffeebank/internal/gamification"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		runAddress string
		rulesFile  string
		preset     string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				runAddress: "localhost:8080",
				preset:     gamification.PresetClassic,
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"RUN_ADDRESS": "localhost:9999",
				"RULES_FILE":  "/etc/coffeebank/rules.toml",
				"PRESET":      "boosted",
			},
			flags: []string{},
			want: want{
				runAddress: "localhost:9999",
				rulesFile:  "/etc/coffeebank/rules.toml",
				preset:     "boosted",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-a", "localhost:7777",
				"-f", "rules.toml",
				"-p", "boosted",
			},
			want: want{
				runAddress: "localhost:7777",
				rulesFile:  "rules.toml",
				preset:     "boosted",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"RUN_ADDRESS": "env:9000",
				"PRESET":      "classic",
			},
			flags: []string{
				"-a", "flag:8000",
				"-p", "boosted",
			},
			want: want{
				runAddress: "env:9000",
				preset:     "classic",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.runAddress, cfg.RunAddress)
			assert.Equal(t, tt.want.rulesFile, cfg.RulesFile)
			assert.Equal(t, tt.want.preset, cfg.Preset)
		})
	}
}

func TestLoadRules_PresetOnly(t *testing.T) {
	rules, err := LoadRules(&Config{Preset: gamification.PresetClassic})
	require.NoError(t, err)

	assert.Equal(t, gamification.ClassicRules(), rules)
}

func TestLoadRules_UnknownPreset(t *testing.T) {
	_, err := LoadRules(&Config{Preset: "turbo"})
	require.Error(t, err)
}

func TestLoadRules_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := `
coffee_price = 5
savings_limit = 20000

[[streak_reward]]
days = 3
message = "Три дня подряд!"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rules, err := LoadRules(&Config{Preset: gamification.PresetClassic, RulesFile: path})
	require.NoError(t, err)

	assert.Equal(t, 5, rules.CoffeePrice)
	assert.Equal(t, 20000, rules.SavingsLimit)
	// Непереопределённые поля остаются из пресета.
	assert.Equal(t, 10, rules.CoffeeXP)
	require.Len(t, rules.StreakRewards, 1)
	assert.Equal(t, 3, rules.StreakRewards[0].Days)
}

func TestLoadRules_LevelBonusOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := `
[level_bonus]
2 = 75
4 = 150
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rules, err := LoadRules(&Config{Preset: gamification.PresetClassic, RulesFile: path})
	require.NoError(t, err)

	// Таблица заменяется целиком: уровни пресета без записи исчезают.
	assert.Equal(t, map[int]int{2: 75, 4: 150}, rules.LevelBonuses)
}

func TestLoadRules_InvalidLevelBonusKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("[level_bonus]\nfirst = 50\n"), 0o600))

	_, err := LoadRules(&Config{Preset: gamification.PresetClassic, RulesFile: path})
	require.Error(t, err)
}

func TestLoadRules_StreakRewardsMustAscend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := `
[[streak_reward]]
days = 30
message = "Месяц!"

[[streak_reward]]
days = 7
message = "Неделя!"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadRules(&Config{Preset: gamification.PresetClassic, RulesFile: path})
	require.Error(t, err)
}

func TestLoadRules_InvalidCashbackRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("cashback_min = 100\ncashback_max = 50\n"), 0o600))

	_, err := LoadRules(&Config{Preset: gamification.PresetClassic, RulesFile: path})
	require.Error(t, err)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(&Config{Preset: gamification.PresetClassic, RulesFile: "/nonexistent/rules.toml"})
	require.Error(t, err)
}
