package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePercent(t *testing.T) {
	cases := []struct {
		name      string
		completed int64
		total     int64
		want      int
	}{
		{"kursus tanpa materi", 0, 0, 0},
		{"belum mulai", 0, 10, 0},
		{"setengah jalan", 5, 10, 50},
		{"selesai semua", 10, 10, 100},
		{"pembulatan ke atas", 1, 3, 33},
		{"dua per tiga", 2, 3, 67},
		{"satu dari tujuh", 1, 7, 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputePercent(tc.completed, tc.total))
		})
	}
}

func TestComputePercentClamps(t *testing.T) {
	// completed > total bisa terjadi sesaat setelah materi dihapus
	assert.Equal(t, 100, ComputePercent(12, 10))
	assert.Equal(t, 0, ComputePercent(-1, 10))
	assert.Equal(t, 0, ComputePercent(5, -1))
}
