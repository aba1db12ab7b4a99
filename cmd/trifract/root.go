package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/esimov/trifract"
	"github.com/esimov/trifract/utils"
)

// options holds the raw flag values. A flag only overrides the
// configuration file when it was explicitly set.
type options struct {
	config    string
	logFile   string
	verbose   bool
	passes    int
	factor    float64
	width     int
	height    int
	name      string
	dir       string
	format    string
	seed      int64
	source    string
	lineWidth float64
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o options
	def := trifract.DefaultConfig()

	root := &cobra.Command{
		Use:           "trifract",
		Short:         "Generate fractal line art from a recursively subdivided triangle",
		Long:          `trifract splits a triangle into randomly perturbed children for a number of passes and saves the outlines as an image.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg, &o, stdout, stderr)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&o.config, "config", "c", "", "TOML configuration file")
	flags.IntVarP(&o.passes, "passes", "n", def.Passes, "Number of subdivision passes")
	flags.Float64VarP(&o.factor, "factor", "k", def.Factor, "Perturbation factor, between 0 and 1")
	flags.IntVarP(&o.width, "width", "w", def.Width, "Width of the root triangle")
	flags.IntVarP(&o.height, "height", "H", def.Height, "Height of the root triangle")
	flags.StringVarP(&o.name, "name", "o", def.Name, "Output file name, without extension")
	flags.StringVarP(&o.dir, "dir", "d", def.Dir, "Output directory")
	flags.StringVarP(&o.format, "format", "f", string(def.Format), "Output format: png, bmp or tiff")
	flags.Int64VarP(&o.seed, "seed", "s", def.Seed, "Random seed, 0 for a time based seed")
	flags.StringVar(&o.source, "source", def.Source, "Random source: math or minstd")
	flags.Float64VarP(&o.lineWidth, "line-width", "l", def.LineWidth, "Line width")

	root.PersistentFlags().StringVar(&o.logFile, "log", "trifract.log", "Append-only log file, empty to disable")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newExamplesCmd(&o, stdout, stderr))

	return root
}

// resolve merges the defaults, the optional configuration file and the explicitly set flags.
func (o *options) resolve(cmd *cobra.Command) (trifract.Config, error) {
	cfg := trifract.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = trifract.LoadConfig(o.config, cfg); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("passes") {
		cfg.Passes = o.passes
	}
	if flags.Changed("factor") {
		cfg.Factor = o.factor
	}
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("name") {
		cfg.Name = o.name
	}
	if flags.Changed("dir") {
		cfg.Dir = o.dir
	}
	if flags.Changed("format") {
		cfg.Format = trifract.Format(o.format)
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("line-width") {
		cfg.LineWidth = o.lineWidth
	}
	return cfg, nil
}

// observer builds the loggers for a single run: warnings (or everything in
// verbose mode) go to stderr, every event is appended to the log file.
// The returned function closes the log file.
func (o *options) observer(id uuid.UUID, stderr io.Writer) (trifract.Observer, func(), error) {
	level := log.WarnLevel
	if o.verbose {
		level = log.DebugLevel
	}
	run := id.String()[:8]
	obs := []trifract.Observer{
		trifract.NewLogObserver(utils.NewLogger(stderr, level).With("run", run)),
	}
	if o.logFile == "" {
		return trifract.Observers(obs...), func() {}, nil
	}

	f, err := utils.OpenLog(o.logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	obs = append(obs, trifract.NewLogObserver(utils.NewLogger(f, log.DebugLevel).With("run", run)))

	return trifract.Observers(obs...), func() { f.Close() }, nil
}

func run(cfg trifract.Config, o *options, stdout, stderr io.Writer) error {
	id := uuid.New()
	obs, closeLog, err := o.observer(id, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := trifract.NewGenerator(cfg, trifract.WithObserver(obs), trifract.WithRunID(id))
	if err != nil {
		return err
	}

	var s *utils.Spinner
	if f, ok := stderr.(*os.File); ok && !o.verbose && utils.IsTerminal(f) {
		s = utils.NewSpinner(stderr)
		s.Start("Generating triangles...")
	}
	start := time.Now()
	err = g.Picture()
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Generated in: %s\n", utils.ValueStyle.Render(utils.FormatTime(time.Since(start))))
	fmt.Fprintf(stdout, "Total number of %s triangles generated in %s passes\n",
		utils.ValueStyle.Render(utils.FormatCount(len(g.Generation()))),
		utils.ValueStyle.Render(fmt.Sprint(cfg.Passes)),
	)
	fmt.Fprintf(stdout, "Saved as: %s %s\n", cfg.Output(), utils.SuccessStyle.Render("✓"))

	return nil
}
