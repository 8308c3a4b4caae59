package codec

import (
	"context"
	"errors"

	"github.com/dunamismax/imgconvert/internal/domain"
)

const DefaultJPEGQuality = 75

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Codec decodes an encoded source image and re-encodes it in the target format.
type Codec interface {
	Transcode(ctx context.Context, input []byte, format domain.Format) ([]byte, error)
}

type Options struct {
	JPEGQuality int
}

// New returns the codec selected at build time: libvips with the govips tag,
// pure Go otherwise.
func New(opts Options) (Codec, error) {
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = DefaultJPEGQuality
	}
	return newCodec(opts)
}

// ContentType is the media type of an encoded image in the given format.
func ContentType(format domain.Format) string {
	switch format {
	case domain.FormatJPEG:
		return "image/jpeg"
	case domain.FormatGIF:
		return "image/gif"
	case domain.FormatBMP:
		return "image/bmp"
	case domain.FormatWEBP:
		return "image/webp"
	case domain.FormatTIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}
