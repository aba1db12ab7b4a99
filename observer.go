package trifract

import "github.com/charmbracelet/log"

// PassEvent summarizes a single subdivision pass.
type PassEvent struct {
	Pass      int        // zero based pass index
	Before    int        // number of triangles entering the pass
	After     int        // number of triangles produced by the pass
	Extent    Point      // largest coordinates after the pass
	MaxShift  float64    // largest distance a midpoint was moved during the pass
	Triangles Generation // generation produced by the pass, must not be modified
}

// Observer receives events emitted while a picture is generated.
// The generator itself performs no logging; it reports to its observer.
type Observer interface {
	OnCreate(cfg Config)
	OnInvalid(field string, err error)
	OnPass(ev PassEvent)
	OnPersist(path string, err error)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) OnCreate(Config)         {}
func (NopObserver) OnInvalid(string, error) {}
func (NopObserver) OnPass(PassEvent)        {}
func (NopObserver) OnPersist(string, error) {}

type multiObserver []Observer

// Observers fans every event out to all the given observers.
func Observers(obs ...Observer) Observer {
	return multiObserver(obs)
}

func (m multiObserver) OnCreate(cfg Config) {
	for _, o := range m {
		o.OnCreate(cfg)
	}
}

func (m multiObserver) OnInvalid(field string, err error) {
	for _, o := range m {
		o.OnInvalid(field, err)
	}
}

func (m multiObserver) OnPass(ev PassEvent) {
	for _, o := range m {
		o.OnPass(ev)
	}
}

func (m multiObserver) OnPersist(path string, err error) {
	for _, o := range m {
		o.OnPersist(path, err)
	}
}

// LogObserver writes generator events to a structured logger.
// Pass summaries are logged at debug level, the complete triangle
// list only when the logger accepts debug messages.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an observer logging through l.
func NewLogObserver(l *log.Logger) *LogObserver {
	return &LogObserver{logger: l}
}

func (o *LogObserver) OnCreate(cfg Config) {
	o.logger.Info("create",
		"n", cfg.Passes, "k", cfg.Factor, "w", cfg.Width, "h", cfg.Height, "name", cfg.Name)
}

func (o *LogObserver) OnInvalid(field string, err error) {
	o.logger.Error("invalid config", "field", field, "err", UserMessage(err))
}

func (o *LogObserver) OnPass(ev PassEvent) {
	o.logger.Debug("step",
		"pass", ev.Pass,
		"before", ev.Before,
		"after", ev.After,
		"extent", ev.Extent,
		"shift", ev.MaxShift,
	)
	if o.logger.GetLevel() <= log.DebugLevel {
		o.logger.Debug("step triangles", "pass", ev.Pass, "list", ev.Triangles.String())
	}
}

func (o *LogObserver) OnPersist(path string, err error) {
	if err != nil {
		o.logger.Error("save pic fail", "path", path, "err", UserMessage(err))
		return
	}
	o.logger.Info("save pic", "path", path)
}
