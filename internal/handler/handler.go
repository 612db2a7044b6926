// Package handler содержит HTTP-обработчики API демо-приложения коффибанка.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mtbank/coffeebank/internal/animation"
	"github.com/mtbank/coffeebank/internal/gamification"
	"github.com/mtbank/coffeebank/internal/service"
	"github.com/mtbank/coffeebank/internal/view"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CheckNickname(nickname string) error
	CompleteOnboarding(nickname string, categories []string) ([]gamification.Event, error)
	BuyCoffee() ([]gamification.Event, error)
	SimulateTransaction() []gamification.Event
	AdvanceDay(today time.Time) []gamification.Event
	Dashboard() view.Dashboard
	Deposits() view.Deposits
	Analytics() view.Analytics
	Card() view.Card
	Tasks() []view.Task
	SetCardColor(color string)
	SetCardPhoto(photo string)
	SetTheme(theme string) string
}

// Player определяет контракт плеера анимации покупки кофе.
type Player interface {
	Start() bool
	Stop()
	IsAnimating() bool
	LastFrame() animation.Frame
}

// Handler реализует HTTP-обработчики API демо-приложения.
type Handler struct {
	service Service
	player  Player
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, player Player, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		player:  player,
		logger:  logger,
		now:     time.Now,
	}
}

type eventsResponse struct {
	Events []gamification.Event `json:"events"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) writeEvents(w http.ResponseWriter, events []gamification.Event) {
	if events == nil {
		events = []gamification.Event{}
	}
	h.writeJSON(w, eventsResponse{Events: events})
}

type nicknameRequest struct {
	Nickname string `json:"nickname"`
}

// CheckNickname проверяет доступность никнейма на шаге онбординга.
func (h *Handler) CheckNickname(w http.ResponseWriter, r *http.Request) {
	var req nicknameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.CheckNickname(req.Nickname); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type onboardingRequest struct {
	Nickname   string   `json:"nickname"`
	Categories []string `json:"categories"`
}

// CompleteOnboarding завершает онбординг пользователя.
func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	events, err := h.service.CompleteOnboarding(req.Nickname, req.Categories)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidNickname):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrNoCategories):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrAlreadyOnboarded):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.logger.Error("complete onboarding error", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeEvents(w, events)
}

// BuyCoffee обрабатывает покупку кофе и запускает анимацию.
func (h *Handler) BuyCoffee(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.BuyCoffee()
	if err != nil {
		if errors.Is(err, gamification.ErrLimitExceeded) {
			http.Error(w, "Превышен лимит сбережений!", http.StatusPaymentRequired)
			return
		}
		h.logger.Error("buy coffee error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Анимация декоративна: отказ из-за идущего проигрывания не ошибка.
	h.player.Start()

	h.writeEvents(w, events)
}

// SimulateTransaction обрабатывает синтетическую транзакцию.
func (h *Handler) SimulateTransaction(w http.ResponseWriter, r *http.Request) {
	h.writeEvents(w, h.service.SimulateTransaction())
}

type advanceDayRequest struct {
	Date string `json:"date"`
}

// AdvanceDay фиксирует активность за день. Тело запроса опционально:
// без него берётся текущая дата, иначе дата из поля date
// (RFC3339 или ГГГГ-ММ-ДД).
func (h *Handler) AdvanceDay(w http.ResponseWriter, r *http.Request) {
	day := h.now()

	var req advanceDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Date != "" {
		parsed, err := parseDay(req.Date)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		day = parsed
	}

	h.writeEvents(w, h.service.AdvanceDay(day))
}

func parseDay(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// GetDashboard возвращает представление главного экрана.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Dashboard())
}

// GetDeposits возвращает представление экрана вкладов.
func (h *Handler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Deposits())
}

// GetAnalytics возвращает представление экрана аналитики.
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Analytics())
}

// GetCard возвращает превью кастомизируемой карты.
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Card())
}

// GetTasks возвращает список ежедневных заданий.
func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Tasks())
}

type cardColorRequest struct {
	Color string `json:"color"`
}

// SetCardColor сохраняет цвет карты.
func (h *Handler) SetCardColor(w http.ResponseWriter, r *http.Request) {
	var req cardColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Color == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.service.SetCardColor(req.Color)
	w.WriteHeader(http.StatusOK)
}

type cardPhotoRequest struct {
	Photo string `json:"photo"`
}

// SetCardPhoto сохраняет фото карты.
func (h *Handler) SetCardPhoto(w http.ResponseWriter, r *http.Request) {
	var req cardPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Photo == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.service.SetCardPhoto(req.Photo)
	w.WriteHeader(http.StatusOK)
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

// SetTheme применяет тему оформления и возвращает фактически применённую.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	applied := h.service.SetTheme(req.Theme)
	h.writeJSON(w, themeResponse{Theme: applied})
}

type animationResponse struct {
	Animating bool            `json:"animating"`
	Frame     animation.Frame `json:"frame"`
}

// GetAnimation возвращает текущее состояние анимации покупки кофе.
func (h *Handler) GetAnimation(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, animationResponse{
		Animating: h.player.IsAnimating(),
		Frame:     h.player.LastFrame(),
	})
}

// StopAnimation останавливает текущую анимацию, если она идёт.
func (h *Handler) StopAnimation(w http.ResponseWriter, r *http.Request) {
	h.player.Stop()
	w.WriteHeader(http.StatusOK)
}
