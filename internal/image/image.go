// Package image normalizes uploaded command images into JPEG assets.
package image

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
	"strings"

	_ "image/gif"
	_ "image/png"

	apperrors "github.com/abismo-rpg/comandos/internal/platform/errors"
)

// MaxUploadBytes is the largest accepted source image.
const MaxUploadBytes = 5 * 1024 * 1024

const jpegQuality = 90

// ValidateUpload checks the declared content type and size of a source image
// before it is decoded.
func ValidateUpload(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return apperrors.WithMetadata(
			apperrors.CodeImageInvalidType,
			"uploaded file is not an image",
			map[string]string{"ContentType": contentType},
		)
	}
	if size > MaxUploadBytes {
		return apperrors.New(apperrors.CodeImageTooLarge, "uploaded image exceeds the size limit")
	}
	return nil
}

// Normalize decodes a JPEG, PNG or GIF source and re-encodes it as a JPEG at
// the original dimensions.
func Normalize(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeImageDecodeFailed, "decode uploaded image", err)
	}

	bounds := src.Bounds()
	rgb := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgb, rgb.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(rgb, rgb.Bounds(), src, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeImageDecodeFailed, "encode normalized image", err)
	}
	return buf.Bytes(), nil
}
