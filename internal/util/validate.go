package util

import (
	"regexp"
	"unicode"

	"skillpath_backend/internal/model"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// ValidateUsername 用户名校验：3-30位字母、数字、下划线或连字符
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidatePassword 密码强度校验：至少8位，包含大写、小写和数字
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

// ValidDifficulty 难度枚举校验
func ValidDifficulty(d model.Difficulty) bool {
	switch d {
	case model.Beginner, model.Intermediate, model.Advanced:
		return true
	}
	return false
}
