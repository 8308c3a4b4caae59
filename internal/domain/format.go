package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

type Format string

const (
	FormatPNG  Format = "PNG"
	FormatJPEG Format = "JPEG"
	FormatGIF  Format = "GIF"
	FormatBMP  Format = "BMP"
	FormatWEBP Format = "WEBP"
	FormatTIFF Format = "TIFF"

	DefaultFormat = FormatPNG
)

// SupportedFormats lists the output formats in menu order.
func SupportedFormats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatWEBP, FormatTIFF}
}

func ParseFormat(raw string) (Format, error) {
	candidate := Format(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
}

func (f Format) Valid() bool {
	for _, supported := range SupportedFormats() {
		if f == supported {
			return true
		}
	}
	return false
}

// Extension is the lower-cased format name used as the output file extension.
func (f Format) Extension() string {
	return strings.ToLower(string(f))
}

func (f Format) String() string {
	return string(f)
}
