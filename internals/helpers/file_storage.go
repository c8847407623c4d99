// file: internals/helpers/file_storage.go
package helper

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"belajarku_backend/internals/configs"
)

// batas ukuran uploader di controller (guard ringan)
const MaxUploadSize = int64(25 * 1024 * 1024)

// MIME allow-list per jenis upload
var allowedMIMEs = map[string][]string{
	"image":    {"image/png", "image/jpeg", "image/webp", "image/gif"},
	"video":    {"video/mp4", "video/webm", "video/x-matroska", "video/quicktime"},
	"audio":    {"audio/mpeg", "audio/wav", "audio/ogg", "audio/mp4"},
	"document": {"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/vnd.ms-powerpoint", "application/vnd.openxmlformats-officedocument.presentationml.presentation", "text/plain; charset=utf-8", "text/plain"},
}

func EnsureUploadDir() string {
	dir := configs.UploadDir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[ERROR] gagal membuat folder upload %s: %v", dir, err)
	}
	return dir
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	safe := re.ReplaceAllString(filename, "_")
	return safe
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}

func mimeAllowed(kind, mime string) bool {
	list, ok := allowedMIMEs[kind]
	if !ok {
		return false
	}
	for _, m := range list {
		if strings.HasPrefix(mime, strings.Split(m, ";")[0]) {
			return true
		}
	}
	return false
}

// SaveUploadedFile menyimpan file multipart ke UPLOAD_DIR/<folder>/ dan
// mengembalikan URL relatif (/uploads/...). kind: image|video|audio|document.
// Gambar otomatis dikonversi ke WebP.
func SaveUploadedFile(fileHeader *multipart.FileHeader, folder, kind string) (string, error) {
	if fileHeader.Size > MaxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi %dMB", MaxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("gagal membaca file: %w", err)
	}

	// Sniff MIME dari isi file, bukan cuma header client
	mt := mimetype.Detect(buf.Bytes())
	if !mimeAllowed(kind, mt.String()) {
		return "", fmt.Errorf("tipe file %s tidak diizinkan untuk %s", mt.String(), kind)
	}

	data := buf.Bytes()
	filename := GenerateUniqueFilename(folder, fileHeader.Filename)

	// 🖼 Gambar → WebP (hemat bandwidth)
	if kind == "image" {
		if webpData, err := ConvertToWebP(data); err == nil {
			data = webpData
			filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
		} else {
			log.Printf("[WARN] konversi webp gagal, simpan apa adanya: %v", err)
		}
	}

	baseDir := EnsureUploadDir()
	fullPath := filepath.Join(baseDir, filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return "/uploads/" + filename, nil
}

// DeleteLocalFileByURL menghapus file lokal dari URL relatif /uploads/...
// Best-effort: error hanya dilog, tidak menggagalkan request.
func DeleteLocalFileByURL(fileURL string) {
	if fileURL == "" || !strings.HasPrefix(fileURL, "/uploads/") {
		return
	}
	rel := strings.TrimPrefix(fileURL, "/uploads/")
	fullPath := filepath.Join(EnsureUploadDir(), filepath.FromSlash(rel))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] gagal hapus file %s: %v", fullPath, err)
	}
}
