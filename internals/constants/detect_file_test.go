package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMaterialTypeFromExt(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"modul-1.pdf", MaterialTypePDF},
		{"intro.MP4", MaterialTypeVideo},
		{"rekaman.mp3", MaterialTypeAudio},
		{"diagram.png", MaterialTypeImage},
		{"slide.pptx", MaterialTypeDocument},
		{"catatan.txt", MaterialTypeDocument},
		{"arsip.zip", MaterialTypeDocument}, // fallback
		{"tanpa-ekstensi", MaterialTypeDocument},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectMaterialTypeFromExt(tc.filename), "file: %s", tc.filename)
	}
}

func TestIsValidMaterialType(t *testing.T) {
	for _, v := range MaterialTypes {
		assert.True(t, IsValidMaterialType(v))
	}
	assert.False(t, IsValidMaterialType("EBOOK"))
	assert.False(t, IsValidMaterialType("pdf"), "case-sensitive")
	assert.False(t, IsValidMaterialType(""))
}
