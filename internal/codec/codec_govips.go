//go:build govips && cgo

package codec

import (
	"context"
	"fmt"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/dunamismax/imgconvert/internal/domain"
)

type govipsCodec struct {
	jpegQuality int
	fallback    stdCodec
}

func (c govipsCodec) Transcode(ctx context.Context, input []byte, format domain.Format) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// libvips has no native BMP saver.
	if format == domain.FormatBMP {
		return c.fallback.Transcode(ctx, input, format)
	}

	img, err := vips.NewImageFromBuffer(input)
	if err != nil {
		return nil, fmt.Errorf("decode source image: %w", err)
	}
	defer img.Close()

	return exportGovipsImage(img, format, c.jpegQuality)
}

func exportGovipsImage(img *vips.ImageRef, format domain.Format, quality int) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case domain.FormatJPEG:
		params := vips.NewJpegExportParams()
		params.Quality = quality
		data, _, err = img.ExportJpeg(params)
	case domain.FormatPNG:
		data, _, err = img.ExportPng(vips.NewPngExportParams())
	case domain.FormatWEBP:
		params := vips.NewWebpExportParams()
		params.Lossless = true
		data, _, err = img.ExportWebp(params)
	case domain.FormatGIF:
		data, _, err = img.ExportGIF(vips.NewGifExportParams())
	case domain.FormatTIFF:
		data, _, err = img.ExportTiff(vips.NewTiffExportParams())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format.Extension(), err)
	}
	return data, nil
}
