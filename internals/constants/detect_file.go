package constants

import (
	"path/filepath"
	"strings"
)

// Tipe materi (disimpan sebagai string di kolom material_type)
const (
	MaterialTypePDF      = "PDF"
	MaterialTypeVideo    = "VIDEO"
	MaterialTypeAudio    = "AUDIO"
	MaterialTypeImage    = "IMAGE"
	MaterialTypeDocument = "DOCUMENT"
	MaterialTypeLink     = "LINK"
)

var MaterialTypes = []string{
	MaterialTypePDF,
	MaterialTypeVideo,
	MaterialTypeAudio,
	MaterialTypeImage,
	MaterialTypeDocument,
	MaterialTypeLink,
}

func IsValidMaterialType(t string) bool {
	for _, v := range MaterialTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DetectMaterialTypeFromExt menebak tipe materi dari ekstensi file upload.
func DetectMaterialTypeFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return MaterialTypePDF
	case ".mp4", ".mkv", ".webm", ".mov":
		return MaterialTypeVideo
	case ".mp3", ".wav", ".ogg", ".m4a":
		return MaterialTypeAudio
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return MaterialTypeImage
	case ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx", ".txt":
		return MaterialTypeDocument
	default:
		return MaterialTypeDocument // fallback paling aman
	}
}
