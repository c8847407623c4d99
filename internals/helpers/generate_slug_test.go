package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Belajar Golang Dasar", "belajar-golang-dasar"},
		{"  Spasi   Berlebih  ", "spasi-berlebih"},
		{"Kursus #1: API & Database!", "kursus-1-api-database"},
		{"---judul---", "judul"},
		{"UPPER lower MiXeD", "upper-lower-mixed"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input: %q", tc.in)
	}
}

func TestGenerateSlugMaxLength(t *testing.T) {
	long := strings.Repeat("judul panjang sekali ", 20)
	got := GenerateSlug(long)

	assert.LessOrEqual(t, len(got), 160)
	assert.False(t, strings.HasSuffix(got, "-"), "slug tidak boleh diakhiri dash")
}
