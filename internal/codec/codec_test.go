package codec

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/dunamismax/imgconvert/internal/domain"
)

func TestTranscodeProducesDecodableOutput(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	source := buildTestPNG(t, 64, 32)

	want := map[domain.Format]string{
		domain.FormatPNG:  "png",
		domain.FormatJPEG: "jpeg",
		domain.FormatGIF:  "gif",
		domain.FormatBMP:  "bmp",
		domain.FormatWEBP: "webp",
		domain.FormatTIFF: "tiff",
	}
	for _, format := range domain.SupportedFormats() {
		out, err := c.Transcode(context.Background(), source, format)
		if err != nil {
			t.Fatalf("transcode to %s: %v", format, err)
		}

		img, decodedAs, err := image.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode %s output: %v", format, err)
		}
		if decodedAs != want[format] {
			t.Fatalf("expected %s output to decode as %s, got %s", format, want[format], decodedAs)
		}
		if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
			t.Fatalf("expected 64x32 %s output, got %v", format, img.Bounds())
		}
	}
}

func TestTranscodeRejectsNonImageInput(t *testing.T) {
	c, err := New(Options{JPEGQuality: 90})
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	if _, err := c.Transcode(context.Background(), []byte("just some notes"), domain.FormatPNG); err == nil {
		t.Fatal("expected decode error for text input")
	}
}

func TestTranscodeRejectsUnknownFormat(t *testing.T) {
	c := stdCodec{jpegQuality: DefaultJPEGQuality}

	_, err := c.Transcode(context.Background(), buildTestPNG(t, 4, 4), domain.Format("ICO"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTranscodeHonoursCancelledContext(t *testing.T) {
	c := stdCodec{jpegQuality: DefaultJPEGQuality}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Transcode(ctx, buildTestPNG(t, 4, 4), domain.FormatPNG); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(domain.FormatWEBP); got != "image/webp" {
		t.Fatalf("expected image/webp, got %s", got)
	}
	if got := ContentType(domain.FormatPNG); got != "image/png" {
		t.Fatalf("expected image/png, got %s", got)
	}
}

func buildTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x * 255) / w),
				G: uint8((y * 255) / h),
				B: 140,
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode source png: %v", err)
	}
	return buf.Bytes()
}
