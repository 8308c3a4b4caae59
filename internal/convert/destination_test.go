package convert

import (
	"path/filepath"
	"testing"

	"github.com/dunamismax/imgconvert/internal/domain"
)

func TestDestinationPath(t *testing.T) {
	cases := []struct {
		source string
		format domain.Format
		want   string
	}{
		{source: "/home/u/photo.jpg", format: domain.FormatPNG, want: "/home/u/photo_converted.png"},
		{source: "/home/u/photo.jpg", format: domain.FormatJPEG, want: "/home/u/photo_converted.jpeg"},
		{source: "/home/u/archive.tar.gz", format: domain.FormatTIFF, want: "/home/u/archive.tar_converted.tiff"},
		{source: "/home/u/README", format: domain.FormatGIF, want: "/home/u/README_converted.gif"},
		{source: "/home/u/.hidden", format: domain.FormatBMP, want: "/home/u/.hidden_converted.bmp"},
		{source: "/home/u/v1.2/scan", format: domain.FormatWEBP, want: "/home/u/v1.2/scan_converted.webp"},
		{source: "photo.PNG", format: domain.FormatPNG, want: "photo_converted.png"},
	}

	for _, tc := range cases {
		source := filepath.FromSlash(tc.source)
		want := filepath.FromSlash(tc.want)
		if got := DestinationPath(source, tc.format); got != want {
			t.Fatalf("DestinationPath(%q, %s): expected %q, got %q", source, tc.format, want, got)
		}
	}
}

func TestDestinationPathIsStable(t *testing.T) {
	first := DestinationPath("/data/in.bmp", domain.FormatPNG)
	second := DestinationPath("/data/in.bmp", domain.FormatPNG)
	if first != second {
		t.Fatalf("expected identical destinations, got %q and %q", first, second)
	}
}
