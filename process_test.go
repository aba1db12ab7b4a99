package trifract

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func gray(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestRender(t *testing.T) {
	gen := Generation{Root(100, 100)}
	w, h := gen.CanvasSize()

	r := &Raster{LineWidth: 1, Format: FormatPNG}
	img := r.Render(gen, w, h)

	if b := img.Bounds(); b.Dx() != 101 || b.Dy() != 101 {
		t.Fatalf("canvas size = %dx%d, want 101x101", b.Dx(), b.Dy())
	}
	if v := gray(img, 0, 0); v != 255 {
		t.Errorf("background pixel = %d, want 255", v)
	}
	if v := gray(img, 50, 50); v != 255 {
		t.Errorf("interior pixel = %d, want 255", v)
	}
	if v := gray(img, 50, 100); v == 255 {
		t.Errorf("pixel on the base edge is white, want a stroke")
	}
	if v := gray(img, 24, 50); v == 255 {
		t.Errorf("pixel on the left edge is white, want a stroke")
	}
}

func TestGrayscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.Set(10, 10, color.White)
	src.Set(11, 10, color.Black)
	src.Set(12, 11, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	dst := Grayscale(src)
	if b := dst.Bounds(); b != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v, want (0,0)-(3,2)", b)
	}
	if dst.GrayAt(0, 0).Y != 255 || dst.GrayAt(1, 0).Y != 0 || dst.GrayAt(2, 1).Y != 128 {
		t.Errorf("unexpected gray values: %v", dst.Pix)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	nrgba.Set(0, 0, color.White)
	if v := Grayscale(nrgba).GrayAt(0, 0).Y; v != 255 {
		t.Errorf("generic conversion = %d, want 255", v)
	}
}

func TestSaveFormats(t *testing.T) {
	decoders := map[Format]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
	}

	img := (&Raster{LineWidth: 1}).Render(Generation{Root(40, 30)}, 41, 31)
	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "t."+string(format))

			r := &Raster{LineWidth: 1, Format: format}
			if err := r.Save(img, path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("cannot open output: %v", err)
			}
			defer f.Close()

			got, err := decode(f)
			if err != nil {
				t.Fatalf("cannot decode output: %v", err)
			}
			if b := got.Bounds(); b.Dx() != 41 || b.Dy() != 31 {
				t.Errorf("decoded size = %dx%d, want 41x31", b.Dx(), b.Dy())
			}

			entries, _ := os.ReadDir(dir)
			if len(entries) != 1 {
				t.Errorf("directory holds %d files, want only the picture", len(entries))
			}
		})
	}
}

func TestSaveErrors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "t.png")
		err := (&Raster{Format: FormatPNG}).Save(img, path)
		if !IsCode(err, ErrCodePersist) {
			t.Fatalf("Save() error = %v, want %s", err, ErrCodePersist)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Save() error = %v, want the cause to be preserved", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := (&Raster{Format: "gif"}).Save(img, filepath.Join(t.TempDir(), "t.gif"))
		if !IsCode(err, ErrCodePersist) {
			t.Errorf("Save() error = %v, want %s", err, ErrCodePersist)
		}
	})

	t.Run("encoder failure", func(t *testing.T) {
		boom := errors.New("boom")
		encoders["broken"] = func(io.Writer, image.Image) error { return boom }
		defer delete(encoders, "broken")

		dir := t.TempDir()
		err := (&Raster{Format: "broken"}).Save(img, filepath.Join(dir, "t.broken"))
		if !IsCode(err, ErrCodePersist) || !errors.Is(err, boom) {
			t.Fatalf("Save() error = %v, want a persist failure wrapping boom", err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("failed save left %d files behind", len(entries))
		}
	})
}
