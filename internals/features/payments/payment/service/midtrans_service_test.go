package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrderID(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 5, 9, 0, time.Local)
	got := BuildOrderID("CRS", at, "a1b2c3d4")

	assert.Equal(t, "CRS-20260830140509-a1b2c3d4", got)
	assert.LessOrEqual(t, len(got), 50, "order id Midtrans maksimal 50 karakter")
}

func TestGenerateSnapTokenRejectsBadInput(t *testing.T) {
	_, _, err := GenerateSnapToken("ORD-1", 0, "Kursus", CheckoutCustomer{})
	assert.Error(t, err, "amount nol ditolak sebelum memanggil gateway")

	_, _, err = GenerateSnapToken("", 10000, "Kursus", CheckoutCustomer{})
	assert.Error(t, err, "order id kosong ditolak")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, strings.Repeat("x", 3), truncate(strings.Repeat("x", 3), 0))
}
