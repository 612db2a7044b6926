// Package service реализует бизнес-логику демо-приложения коффибанка.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mtbank/coffeebank/internal/gamification"
	"github.com/mtbank/coffeebank/internal/model"
	"github.com/mtbank/coffeebank/internal/validation"
	"github.com/mtbank/coffeebank/internal/view"
)

// Ошибки онбординга. Состояние профиля при них не меняется.
var (
	// ErrInvalidNickname возвращается для слишком короткого или занятого никнейма.
	ErrInvalidNickname = errors.New("invalid nickname")
	// ErrNoCategories возвращается, если не выбрана ни одна категория.
	ErrNoCategories = errors.New("no categories selected")
	// ErrAlreadyOnboarded возвращается при повторном завершении онбординга:
	// никнейм после онбординга неизменяем.
	ErrAlreadyOnboarded = errors.New("onboarding already completed")
)

const resetPollInterval = time.Minute

// Service владеет единственным профилем демо-приложения и координирует
// игровой движок, финансовые агрегаты и представления. Все операции
// выполняются под мьютексом: движок атомарен, но HTTP-запросы конкурентны.
type Service struct {
	engine *gamification.Engine
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	profile   *model.Profile
	deposits  []model.Deposit
	analytics model.Analytics
	lastReset time.Time
}

// NewService создаёт сервис с новым профилем и демонстрационными данными.
// Стартовый порог опыта профиля берётся из правил движка.
func NewService(engine *gamification.Engine, logger *zap.Logger) *Service {
	now := time.Now()
	profile := model.NewProfile(now)
	profile.XPToNextLevel = engine.Rules().InitialXPToNext

	return &Service{
		engine:    engine,
		logger:    logger,
		now:       time.Now,
		profile:   profile,
		deposits:  model.SeedDeposits(),
		analytics: model.SeedAnalytics(),
		lastReset: model.DateOnly(now),
	}
}

// CheckNickname проверяет доступность никнейма для онбординга.
func (s *Service) CheckNickname(nickname string) error {
	if !validation.IsValidNicknameLength(nickname) {
		return fmt.Errorf("%w: минимум %d символа", ErrInvalidNickname, validation.MinNicknameLength)
	}
	if validation.IsNicknameTaken(nickname) {
		return fmt.Errorf("%w: никнейм уже занят", ErrInvalidNickname)
	}
	return nil
}

// CompleteOnboarding завершает онбординг: валидирует никнейм и категории,
// фиксирует их в профиле и выдаёт стартовое достижение.
func (s *Service) CompleteOnboarding(nickname string, categories []string) ([]gamification.Event, error) {
	if err := s.CheckNickname(nickname); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile.Nickname != "" {
		return nil, ErrAlreadyOnboarded
	}

	events := s.engine.CompleteSetup(s.profile, nickname, categories)
	s.logger.Info("onboarding completed",
		zap.String("nickname", nickname),
		zap.Int("categories", len(categories)))
	return events, nil
}

// BuyCoffee регистрирует покупку кофе.
func (s *Service) BuyCoffee() ([]gamification.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.engine.BuyCoffee(s.profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info("coffee purchased",
		zap.Int("coffee_count", s.profile.CoffeeCount),
		zap.Int("savings", s.profile.SavingsAmount))
	return events, nil
}

// SimulateTransaction регистрирует синтетическую транзакцию для демо.
func (s *Service) SimulateTransaction() []gamification.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.engine.RecordTransaction(s.profile)
	s.logger.Info("transaction simulated", zap.Int("cashback", s.profile.CashbackEarned))
	return events
}

// AdvanceDay фиксирует активность за указанный день и пересчитывает страйк.
func (s *Service) AdvanceDay(today time.Time) []gamification.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.engine.AdvanceDay(s.profile, today)
	s.logger.Info("day advanced", zap.Int("streak", s.profile.Streak))
	return events
}

// Dashboard возвращает представление главного экрана.
func (s *Service) Dashboard() view.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.RenderDashboard(s.profile, s.engine.Rules().SavingsGoal)
}

// Deposits возвращает представление экрана вкладов.
func (s *Service) Deposits() view.Deposits {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.RenderDeposits(s.deposits, s.now())
}

// Analytics возвращает представление экрана аналитики.
func (s *Service) Analytics() view.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.RenderAnalytics(s.analytics)
}

// Card возвращает превью кастомизируемой карты.
func (s *Service) Card() view.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.RenderCard(s.profile)
}

// Tasks возвращает список ежедневных заданий.
func (s *Service) Tasks() []view.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.RenderTasks(s.profile)
}

// SetCardColor сохраняет цвет карты. Побеждает последняя запись.
func (s *Service) SetCardColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.CardColor = color
}

// SetCardPhoto сохраняет фото карты (data URL). Побеждает последняя запись.
func (s *Service) SetCardPhoto(photo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.CardPhoto = photo
}

// SetTheme применяет тему оформления; неизвестная тема заменяется
// темой по умолчанию. Возвращает применённую тему.
func (s *Service) SetTheme(theme string) string {
	applied := model.DefaultTheme
	for _, name := range model.AvailableThemes {
		if name == theme {
			applied = theme
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Theme = applied
	return applied
}

// StartDailyReset запускает цикл сброса ежедневных заданий и блокируется
// до отмены контекста. Опрос раз в минуту: сброс происходит на первом тике
// нового календарного дня, поэтому может отстать от полуночи в пределах
// интервала опроса.
func (s *Service) StartDailyReset(ctx context.Context) {
	ticker := time.NewTicker(resetPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.maybeResetTasks(now)
		}
	}
}

func (s *Service) maybeResetTasks(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := model.DateOnly(now)
	if !today.After(s.lastReset) {
		return
	}

	s.engine.ResetDailyTasks(s.profile)
	s.lastReset = today
	s.logger.Info("daily tasks reset", zap.Time("date", today))
}
