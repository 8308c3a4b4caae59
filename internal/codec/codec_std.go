package codec

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/dunamismax/imgconvert/internal/domain"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imagingFormats = map[domain.Format]imaging.Format{
	domain.FormatPNG:  imaging.PNG,
	domain.FormatJPEG: imaging.JPEG,
	domain.FormatGIF:  imaging.GIF,
	domain.FormatBMP:  imaging.BMP,
	domain.FormatTIFF: imaging.TIFF,
}

type stdCodec struct {
	jpegQuality int
}

func (c stdCodec) Transcode(ctx context.Context, input []byte, format domain.Format) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	src, err := decodeImage(input)
	if err != nil {
		return nil, err
	}
	return encodeImage(src, format, c.jpegQuality)
}

func decodeImage(input []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("decode source image: %w", err)
	}
	return img, nil
}

func encodeImage(img image.Image, format domain.Format, quality int) ([]byte, error) {
	var buf bytes.Buffer

	if format == domain.FormatWEBP {
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
		return buf.Bytes(), nil
	}

	target, ok := imagingFormats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err := imaging.Encode(&buf, img, target, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format.Extension(), err)
	}
	return buf.Bytes(), nil
}
