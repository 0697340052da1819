package validation

import (
	"fmt"
	"regexp"
)

// MaxUsernameLen максимальная длина username
const MaxUsernameLen = 32

// EmailPattern минимальная проверка формата email: непустая локальная часть,
// символ @, непустой домен. Намеренно либеральная — строгая проверка
// возможна только письмом с подтверждением.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// ValidateUsername проверяет, что username непустой и не превышает лимит длины
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	return nil
}

// ValidateEmail проверяет, что email непустой и похож на email
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}

	return nil
}

// ValidatePassword проверяет, что пароль непустой
// Требований к длине нет: политика паролей за рамками сервиса
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}
