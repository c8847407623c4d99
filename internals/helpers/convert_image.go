// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

const (
	// lebar maksimum gambar hasil konversi (thumbnail/avatar tidak perlu lebih)
	webpMaxWidth = 1600
	webpQuality  = 80
)

// ConvertToWebP men-decode PNG/JPEG/GIF lalu encode ulang ke WebP.
// Gambar lebih lebar dari webpMaxWidth di-resize proporsional.
func ConvertToWebP(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode gambar gagal: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > webpMaxWidth {
		newH := b.Dy() * webpMaxWidth / b.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, webpMaxWidth, newH))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}

	// imaging.Clone memastikan format internal konsisten sebelum encode
	out := new(bytes.Buffer)
	if err := webp.Encode(out, imaging.Clone(img), &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return out.Bytes(), nil
}
