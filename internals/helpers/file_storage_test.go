package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"materi belajar.pdf", "materi_belajar.pdf"},
		{"a/b\\c.pdf", "a_b_c.pdf"},
		{"laporan-akhir_v2.docx", "laporan-akhir_v2.docx"},
		{"видео.mp4", "_.mp4"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in), "input: %q", tc.in)
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("materials", "video belajar.mp4")
	b := GenerateUniqueFilename("materials", "video belajar.mp4")

	assert.NotEqual(t, a, b, "dua panggilan harus menghasilkan nama berbeda")
	assert.True(t, strings.HasPrefix(a, "materials/"))
	assert.True(t, strings.HasSuffix(a, "video_belajar.mp4"))
	assert.NotContains(t, a, " ")
}

func TestMimeAllowed(t *testing.T) {
	assert.True(t, mimeAllowed("image", "image/png"))
	assert.True(t, mimeAllowed("video", "video/mp4"))
	assert.True(t, mimeAllowed("document", "application/pdf"))
	assert.True(t, mimeAllowed("document", "text/plain; charset=utf-8"))

	assert.False(t, mimeAllowed("image", "application/pdf"))
	assert.False(t, mimeAllowed("document", "application/x-msdownload"))
	assert.False(t, mimeAllowed("archive", "application/zip"), "kind tak dikenal ditolak")
}
