package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mtbank/coffeebank/internal/gamification"
	"github.com/mtbank/coffeebank/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(gamification.NewEngine(gamification.ClassicRules()), zap.NewNop())
}

func TestService_CompleteOnboarding(t *testing.T) {
	s := newTestService(t)

	events, err := s.CompleteOnboarding("кофеман", []string{"coffee", "travel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Kind != gamification.EventWelcome {
		t.Errorf("expected a single welcome event, got %+v", events)
	}

	d := s.Dashboard()
	if d.Nickname != "кофеман" {
		t.Errorf("nickname not applied: %q", d.Nickname)
	}
	if d.AchievementsCount != 1 {
		t.Errorf("setup achievement missing: %+v", d)
	}
}

func TestService_CompleteOnboarding_Validation(t *testing.T) {
	tests := []struct {
		name       string
		nickname   string
		categories []string
		wantErr    error
	}{
		{
			name:       "short nickname",
			nickname:   "ab",
			categories: []string{"coffee"},
			wantErr:    ErrInvalidNickname,
		},
		{
			name:       "reserved nickname",
			nickname:   "Admin",
			categories: []string{"coffee"},
			wantErr:    ErrInvalidNickname,
		},
		{
			name:       "no categories",
			nickname:   "кофеман",
			categories: nil,
			wantErr:    ErrNoCategories,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)

			if _, err := s.CompleteOnboarding(tt.nickname, tt.categories); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
			if got := s.Dashboard().Nickname; got != "" {
				t.Errorf("profile must stay untouched, nickname %q", got)
			}
		})
	}
}

func TestService_CompleteOnboarding_NicknameImmutable(t *testing.T) {
	s := newTestService(t)

	if _, err := s.CompleteOnboarding("кофеман", []string{"coffee"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.CompleteOnboarding("другой", []string{"coffee"}); !errors.Is(err, ErrAlreadyOnboarded) {
		t.Errorf("got %v, want ErrAlreadyOnboarded", err)
	}
	if got := s.Dashboard().Nickname; got != "кофеман" {
		t.Errorf("nickname must not change, got %q", got)
	}
}

func TestService_InitialThresholdFromRules(t *testing.T) {
	rules := gamification.ClassicRules()
	rules.InitialXPToNext = 200
	s := NewService(gamification.NewEngine(rules), zap.NewNop())

	if got := s.Dashboard().XPToNextLevel; got != 200 {
		t.Errorf("initial xp threshold = %d, want 200", got)
	}
}

func TestService_BuyCoffee(t *testing.T) {
	s := newTestService(t)

	events, err := s.BuyCoffee()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) == 0 {
		t.Fatalf("expected purchase events")
	}

	d := s.Dashboard()
	if d.CoffeeCount != 1 || d.Savings != "3 BYN" {
		t.Errorf("dashboard after purchase: %+v", d)
	}
}

func TestService_SimulateTransaction(t *testing.T) {
	s := newTestService(t)

	events := s.SimulateTransaction()
	if len(events) == 0 {
		t.Fatalf("expected transaction events")
	}

	completed := false
	for _, task := range s.Tasks() {
		if task.ID == model.TaskTransaction && task.Completed {
			completed = true
		}
	}
	if !completed {
		t.Errorf("transaction task must be completed")
	}
}

func TestService_SetTheme_FallsBackToDefault(t *testing.T) {
	s := newTestService(t)

	if got := s.SetTheme("forest"); got != "forest" {
		t.Errorf("known theme: got %q", got)
	}
	if got := s.SetTheme("neon"); got != model.DefaultTheme {
		t.Errorf("unknown theme must fall back, got %q", got)
	}
	if got := s.Dashboard().Theme; got != model.DefaultTheme {
		t.Errorf("profile theme: got %q", got)
	}
}

func TestService_CardCustomisation(t *testing.T) {
	s := newTestService(t)

	s.SetCardColor("#ff0000")
	s.SetCardPhoto("data:image/png;base64,aGk=")

	card := s.Card()
	if card.Color != "#ff0000" || !card.HasPhoto {
		t.Errorf("card: %+v", card)
	}
}

func TestService_MaybeResetTasks(t *testing.T) {
	s := newTestService(t)
	s.BuyCoffee()
	s.SimulateTransaction()

	// Тик в пределах того же дня ничего не сбрасывает.
	s.maybeResetTasks(s.lastReset.Add(23 * time.Hour))
	for _, task := range s.Tasks() {
		if task.ID != model.TaskLogin && !task.Completed {
			t.Fatalf("tasks must survive same-day tick: %+v", task)
		}
	}

	// Первый тик нового дня сбрасывает всё, кроме входа.
	s.maybeResetTasks(s.lastReset.AddDate(0, 0, 1))
	for _, task := range s.Tasks() {
		switch task.ID {
		case model.TaskLogin:
			if !task.Completed {
				t.Errorf("login task must stay completed")
			}
		default:
			if task.Completed {
				t.Errorf("task %s must reset", task.ID)
			}
		}
	}
}

func TestService_ResetDoesNotTouchStreak(t *testing.T) {
	s := newTestService(t)

	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	s.AdvanceDay(start)
	s.AdvanceDay(start.AddDate(0, 0, 1))
	streak := s.Dashboard().Streak

	s.maybeResetTasks(s.lastReset.AddDate(0, 0, 1))
	if got := s.Dashboard().Streak; got != streak {
		t.Errorf("reset must not change streak: got %d want %d", got, streak)
	}
}
