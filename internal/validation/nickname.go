// Package validation содержит функции валидации входных данных.
package validation

import "strings"

// MinNicknameLength — минимальная длина никнейма в символах.
const MinNicknameLength = 3

// reservedNicknames — занятые никнеймы; проверка имитирует запрос
// к серверу регистрации.
var reservedNicknames = map[string]struct{}{
	"user123": {},
	"admin":   {},
	"test":    {},
}

// IsValidNicknameLength проверяет, что никнейм содержит минимум три символа.
// Длина считается в рунах, чтобы кириллические никнеймы не ущемлялись.
func IsValidNicknameLength(nickname string) bool {
	return len([]rune(strings.TrimSpace(nickname))) >= MinNicknameLength
}

// IsNicknameTaken проверяет, занят ли никнейм (без учёта регистра).
func IsNicknameTaken(nickname string) bool {
	_, taken := reservedNicknames[strings.ToLower(strings.TrimSpace(nickname))]
	return taken
}
