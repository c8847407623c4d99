package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("budi01", "budi@example.com", "rahasia123"))

	assert.Error(t, ValidateRegisterInput("", "budi@example.com", "rahasia123"))
	assert.Error(t, ValidateRegisterInput("budi01", "bukan-email", "rahasia123"))
	assert.Error(t, ValidateRegisterInput("budi01", "budi@example.com", "pendek1"))
	assert.Error(t, ValidateRegisterInput("budi01", "budi@example.com", "tanpaangka"),
		"password harus mengandung huruf dan angka")
	assert.Error(t, ValidateRegisterInput("budi01", "budi@example.com", "12345678"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("budi01", "apapun"))
	assert.Error(t, ValidateLoginInput("  ", "apapun"))
	assert.Error(t, ValidateLoginInput("budi01", ""))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hash, "salah123"))
}
