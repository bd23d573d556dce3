package util

import (
	"testing"

	"skillpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.NoError(t, ValidateUsername("a_b-c123"))
	assert.NoError(t, ValidateUsername("abc"))

	assert.ErrorIs(t, ValidateUsername("ab"), ErrInvalidUsername)
	assert.ErrorIs(t, ValidateUsername(""), ErrInvalidUsername)
	assert.ErrorIs(t, ValidateUsername("has space"), ErrInvalidUsername)
	assert.ErrorIs(t, ValidateUsername("用户名"), ErrInvalidUsername)
	assert.ErrorIs(t, ValidateUsername("a@b.com"), ErrInvalidUsername)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Abcdef12"))
	assert.NoError(t, ValidatePassword("Sup3rSecret"))

	assert.ErrorIs(t, ValidatePassword("Ab1"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword("abcdefg1"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword("ABCDEFG1"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword("Abcdefgh"), ErrWeakPassword)
}

func TestValidDifficulty(t *testing.T) {
	assert.True(t, ValidDifficulty(model.Beginner))
	assert.True(t, ValidDifficulty(model.Intermediate))
	assert.True(t, ValidDifficulty(model.Advanced))
	assert.False(t, ValidDifficulty(model.Difficulty("expert")))
	assert.False(t, ValidDifficulty(model.Difficulty("")))
}
