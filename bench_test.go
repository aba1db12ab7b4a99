package trifract

import (
	"path/filepath"
	"testing"
)

func BenchmarkEvolve(b *testing.B) {
	root := Generation{Root(1200, 800)}
	rnd := NewRand(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen := Evolve(root, 8, 0.5, rnd, nil)
		if len(gen) != 6561 {
			b.Fatalf("unexpected generation size: %d", len(gen))
		}
	}
}

func BenchmarkRender(b *testing.B) {
	gen := Evolve(Generation{Root(1200, 800)}, 6, 0.5, NewMinStd(1), nil)
	w, h := gen.CanvasSize()
	r := &Raster{LineWidth: 1, Format: FormatPNG}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(gen, w, h)
	}
}

func BenchmarkGeneratePicture(b *testing.B) {
	dir := b.TempDir()
	cfg := Config{Passes: 6, Factor: 0.5, Width: 1200, Height: 800, Name: "bench", Dir: dir}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := GeneratePicture(cfg); err != nil {
			b.Fatalf("Failed generating benchmark picture %s: %v", filepath.Join(dir, "bench.png"), err)
		}
	}
}
