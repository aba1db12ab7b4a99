package trifract

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator builds the triangle fractal described by a Config and draws it.
type Generator struct {
	cfg  Config
	rnd  Rand
	obs  Observer
	id   uuid.UUID
	gen  Generation
	done bool
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand sets the random source used to perturb the midpoints.
// By default the source is selected by Config.Source and Config.Seed.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rnd = r }
}

// WithRunID sets the identifier of the run. A random one is used by default.
func WithRunID(id uuid.UUID) Option {
	return func(g *Generator) { g.id = id }
}

// WithObserver sets the observer receiving the generator events.
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.obs = o }
}

// NewGenerator validates cfg and seeds the root triangle. No triangle
// is created when the configuration is rejected.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	g := &Generator{cfg: cfg, obs: NopObserver{}, id: uuid.New()}
	for _, opt := range opts {
		opt(g)
	}
	if g.obs == nil {
		g.obs = NopObserver{}
	}

	g.obs.OnCreate(cfg)
	if err := cfg.Validate(); err != nil {
		g.obs.OnInvalid(FieldOf(err), err)
		return nil, err
	}
	if g.rnd == nil {
		g.rnd = newSource(cfg.Source, cfg.Seed)
	}
	g.gen = Generation{Root(cfg.Width, cfg.Height)}

	return g, nil
}

// RunID identifies this generator, e.g. for correlating log lines.
func (g *Generator) RunID() uuid.UUID { return g.id }

// Config returns the configuration the generator was built from.
func (g *Generator) Config() Config { return g.cfg }

// Generation returns the current set of triangles.
func (g *Generator) Generation() Generation { return g.gen }

// Generate runs all the subdivision passes. Only the first call performs
// work, subsequent calls return the same final generation.
func (g *Generator) Generate() Generation {
	if g.done {
		return g.gen
	}
	g.gen = Evolve(g.gen, g.cfg.Passes, g.cfg.Factor, g.rnd, g.obs.OnPass)
	g.done = true

	return g.gen
}

// Picture generates the fractal, renders it and writes it to Config.Output.
// It returns an ErrCodePersist error when the picture cannot be written
// and an ErrCodeInternal error on any unexpected failure.
func (g *Generator) Picture() (err error) {
	path := g.cfg.Output()
	defer func() {
		if r := recover(); r != nil {
			err = &Error{
				Code:    ErrCodeInternal,
				Message: fmt.Sprintf("unexpected failure while drawing %s: %v", path, r),
			}
			g.obs.OnPersist(path, err)
		}
	}()

	gen := g.Generate()
	r := &Raster{
		LineWidth: g.cfg.lineWidth(),
		Format:    g.cfg.format(),
	}
	w, h := gen.CanvasSize()
	err = r.Save(r.Render(gen, w, h), path)
	g.obs.OnPersist(path, err)

	return err
}

// GeneratePicture validates cfg, generates the fractal and saves the picture.
func GeneratePicture(cfg Config, opts ...Option) error {
	g, err := NewGenerator(cfg, opts...)
	if err != nil {
		return err
	}
	return g.Picture()
}
