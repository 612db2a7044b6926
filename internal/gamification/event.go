package gamification

import "github.com/google/uuid"

// EventKind различает типы доменных событий движка.
type EventKind string

const (
	EventWelcome      EventKind = "welcome"
	EventPurchase     EventKind = "purchase_completed"
	EventTransaction  EventKind = "transaction_completed"
	EventLevelUp      EventKind = "level_up"
	EventBonus        EventKind = "bonus_awarded"
	EventAchievement  EventKind = "achievement_unlocked"
	EventStreakReward EventKind = "streak_reward"
)

// Severity задаёт уровень уведомления для отображения.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Event — доменное событие движка. Движок не рисует интерфейс:
// вместо этого каждая операция возвращает список событий, которые
// вызывающий слой показывает пользователю.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Kind        EventKind `json:"kind"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	NewLevel    int       `json:"new_level,omitempty"`
	Achievement string    `json:"achievement,omitempty"`
	Amount      int       `json:"amount,omitempty"`
}

func newEvent(kind EventKind, severity Severity, message string) Event {
	return Event{
		ID:       uuid.New(),
		Kind:     kind,
		Severity: severity,
		Message:  message,
	}
}
