package service

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 64
)

// passwordSymbols - фиксированный набор допустимых спецсимволов
const passwordSymbols = `!@#$%^&*(),.?"{}|<>`

// commonPasswords - маленький словарь слишком распространенных паролей,
// запрещенных даже как подстрока
var commonPasswords = []string{
	"password", "123456", "123456789", "qwerty", "abc123", "football",
	"12345678", "111111", "1234567", "iloveyou", "adobe123", "123123",
	"admin", "welcome", "login", "letmein", "monkey", "dragon",
}

type PasswordValidation struct {
	IsValid bool
	Errors  []string
}

// ValidatePassword проверяет пароль по всем правилам сразу и
// накапливает каждое нарушение, а не только первое
func ValidatePassword(password string) PasswordValidation {
	result := PasswordValidation{IsValid: true}

	fail := func(message string) {
		result.IsValid = false
		result.Errors = append(result.Errors, message)
	}

	if strings.TrimSpace(password) == "" {
		fail("Пароль не может быть пустым")
		return result
	}

	if len(password) < passwordMinLength {
		fail(fmt.Sprintf("Пароль должен содержать не менее %d символов", passwordMinLength))
	}

	if len(password) > passwordMaxLength {
		fail(fmt.Sprintf("Пароль не может быть длиннее %d символов", passwordMaxLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		fail("Пароль должен содержать хотя бы одну заглавную букву")
	}
	if !hasLower {
		fail("Пароль должен содержать хотя бы одну строчную букву")
	}
	if !hasDigit {
		fail("Пароль должен содержать хотя бы одну цифру")
	}
	if !hasSymbol {
		fail("Пароль должен содержать хотя бы один спецсимвол")
	}

	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lowered, common) {
			fail("Пароль слишком распространенный, выберите более надежный")
			break
		}
	}

	return result
}
