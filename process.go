package trifract

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

var encoders = map[Format]func(io.Writer, image.Image) error{
	FormatPNG:  png.Encode,
	FormatBMP:  bmp.Encode,
	FormatTIFF: encodeTIFF,
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

var (
	background = color.White
	foreground = color.Black
)

// Raster draws a generation as black outlines on a white canvas
// and writes the result to disk.
type Raster struct {
	LineWidth float64
	Format    Format
}

// Render allocates a width x height canvas and strokes every edge of every triangle.
func (r *Raster) Render(gen Generation, width, height int) image.Image {
	ctx := gg.NewContext(width, height)
	ctx.SetColor(background)
	ctx.Clear()

	ctx.SetColor(foreground)
	ctx.SetLineWidth(r.LineWidth)
	for _, t := range gen {
		for _, e := range t.Edges() {
			ctx.DrawLine(e.X0, e.Y0, e.X1, e.Y1)
		}
		ctx.Stroke()
	}
	return ctx.Image()
}

// Save encodes img into path. The image is first written to a temporary file
// in the destination directory and renamed into place, so a failed save
// never leaves a partial picture behind.
func (r *Raster) Save(img image.Image, path string) (err error) {
	encode, ok := encoders[r.Format]
	if !ok {
		return wrapError(ErrCodePersist, nil, "unsupported format %q", r.Format)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	fq, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return wrapError(ErrCodePersist, err, "cannot create %s", path)
	}
	defer func() {
		if err != nil {
			fq.Close()
			os.Remove(fq.Name())
		}
	}()

	if err = encode(fq, Grayscale(img)); err != nil {
		return wrapError(ErrCodePersist, err, "cannot encode %s", path)
	}
	if err = fq.Close(); err != nil {
		return wrapError(ErrCodePersist, err, "cannot write %s", path)
	}
	if err = os.Chmod(fq.Name(), 0644); err != nil {
		return wrapError(ErrCodePersist, err, "cannot write %s", path)
	}
	if err = os.Rename(fq.Name(), path); err != nil {
		return wrapError(ErrCodePersist, err, "cannot write %s", path)
	}
	return nil
}
