package image

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	apperrors "github.com/abismo-rpg/comandos/internal/platform/errors"
)

func encodeTestImage(t *testing.T, format string, width, height int) []byte {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, src)
	case "gif":
		err = gif.Encode(&buf, src, nil)
	default:
		err = jpeg.Encode(&buf, src, nil)
	}
	if err != nil {
		t.Fatalf("encode %s fixture: %v", format, err)
	}
	return buf.Bytes()
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantCode    apperrors.Code
	}{
		{"jpeg ok", "image/jpeg", 1024, apperrors.CodeUnknown},
		{"png ok", "image/png", MaxUploadBytes, apperrors.CodeUnknown},
		{"pdf rejected", "application/pdf", 1024, apperrors.CodeImageInvalidType},
		{"empty type rejected", "", 1024, apperrors.CodeImageInvalidType},
		{"too large", "image/jpeg", MaxUploadBytes + 1, apperrors.CodeImageTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.contentType, tt.size)
			if tt.wantCode == apperrors.CodeUnknown {
				if err != nil {
					t.Fatalf("ValidateUpload() error = %v, want nil", err)
				}
				return
			}
			if got := apperrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("CodeOf() = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestNormalizeFormats(t *testing.T) {
	for _, format := range []string{"jpeg", "png", "gif"} {
		t.Run(format, func(t *testing.T) {
			out, err := Normalize(encodeTestImage(t, format, 40, 30))
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			cfg, kind, err := image.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("decode normalized output: %v", err)
			}
			if kind != "jpeg" {
				t.Fatalf("normalized format = %q, want jpeg", kind)
			}
			if cfg.Width != 40 || cfg.Height != 30 {
				t.Fatalf("normalized size = %dx%d, want 40x30", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("not an image"))
	if got := apperrors.CodeOf(err); got != apperrors.CodeImageDecodeFailed {
		t.Fatalf("CodeOf() = %v, want %v", got, apperrors.CodeImageDecodeFailed)
	}
}
