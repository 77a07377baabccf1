package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"citygrid/pkg/engine/world"
	"citygrid/pkg/game/config"
	"citygrid/pkg/game/devtools"
	"citygrid/pkg/game/generator"
	"citygrid/pkg/game/renderer"
	"citygrid/pkg/game/renderer/ebiten"
	"citygrid/pkg/game/renderer/tui"
	"citygrid/pkg/game/views"
)

// options are command-line switches that are not part of the config file
type options struct {
	configPath  string
	dumpPath    string // "-" for stdout
	htmlPath    string
	printConfig bool
}

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

func main() {
	cfg, opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if opts.printConfig {
		out, err := cfg.YAML()
		if err != nil {
			logger.Error("render config", "error", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}

	initGettext(cfg.Locale)

	if err := run(cfg, opts, os.Stdout, os.Stdin, logger); err != nil {
		logger.Error("citygrid failed", "error", err)
		os.Exit(1)
	}
}

// parseArgs builds the effective config: defaults, then the config file, then
// any flag given explicitly on the command line
func parseArgs(args []string) (config.Config, options, error) {
	def := config.Default()
	var opts options

	fs := flag.NewFlagSet("citygrid", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.dumpPath, "dump", "", "write a map dump to this file (- for stdout)")
	fs.StringVar(&opts.htmlPath, "html", "", "write an HTML screenshot of both views to this file")
	fs.BoolVar(&opts.printConfig, "print-config", false, "print the effective config as YAML and exit")
	rows := fs.Int("rows", def.Rows, "map rows")
	cols := fs.Int("cols", def.Cols, "map columns")
	seed := fs.Int64("seed", def.Seed, "random seed (0 = time based)")
	treeProb := fs.Float64("tree-prob", def.TreeProbability, "probability a non-road cell is a tree")
	rendererName := fs.String("renderer", def.Renderer, "renderer backend (tui, ebiten)")
	locale := fs.String("locale", def.Locale, "locale for display strings")
	logLevel := fs.String("log-level", def.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return def, opts, err
	}

	cfg := def
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return def, opts, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "seed":
			cfg.Seed = *seed
		case "tree-prob":
			cfg.TreeProbability = *treeProb
		case "renderer":
			cfg.Renderer = *rendererName
		case "locale":
			cfg.Locale = *locale
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, opts, err
	}
	return cfg, opts, nil
}

// run executes populate, aggregate, view and render
func run(cfg config.Config, opts options, out io.Writer, in io.Reader, logger *slog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid, tally, genName, err := generateGrid(cfg, rng)
	if err != nil {
		return fmt.Errorf("generate grid: %w", err)
	}
	if msg := grid.Validate(); msg != "" {
		return fmt.Errorf("generated grid is invalid: %s", msg)
	}
	logger.Info("grid populated",
		"generator", genName, "rows", grid.Rows(), "cols", grid.Cols(),
		"seed", seed, "houses", tally.Houses, "trees", tally.Trees)

	overall := views.OverallThermal(grid)
	v, err := views.Generate(grid, overall)
	if err != nil {
		return fmt.Errorf("generate views: %w", err)
	}
	logger.Info("views generated", "overall_thermal", overall)

	if err := writeDevOutputs(opts, out, grid, v, cfg.ThermalScale()); err != nil {
		return err
	}

	r := newRenderer(cfg, out, in, logger)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", r.Name(), err)
	}
	logger.Debug("rendering", "renderer", r.Name())
	return r.Render(v, grid)
}

// generateGrid picks the fixed layout when one is configured and the city
// block policy otherwise
func generateGrid(cfg config.Config, rng *rand.Rand) (*world.Grid, generator.Tally, string, error) {
	if len(cfg.Layout) > 0 {
		gen := generator.NewLayoutGenerator(cfg.Layout)
		rows, cols := gen.Dimensions()
		grid, tally, err := gen.Generate(rows, cols)
		return grid, tally, gen.Name(), err
	}

	gen := generator.NewCityBlockGenerator(rng)
	gen.TreeProbability = cfg.TreeProbability
	gen.RoadMin = cfg.RoadMin
	gen.RoadMax = cfg.RoadMax
	grid, tally, err := gen.Generate(cfg.Rows, cfg.Cols)
	return grid, tally, gen.Name(), err
}

func writeDevOutputs(opts options, stdout io.Writer, grid *world.Grid, v *views.Views, scale renderer.ThermalScale) error {
	if opts.dumpPath != "" {
		if err := writeTo(opts.dumpPath, stdout, func(w io.Writer) error {
			return devtools.DumpMap(w, grid, v)
		}); err != nil {
			return fmt.Errorf("dump map: %w", err)
		}
	}
	if opts.htmlPath != "" {
		if err := writeTo(opts.htmlPath, stdout, func(w io.Writer) error {
			return devtools.SaveScreenshotHTML(w, grid, v, scale)
		}); err != nil {
			return fmt.Errorf("save screenshot: %w", err)
		}
	}
	return nil
}

// writeTo calls write with stdout for "-" and with a new file otherwise
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newRenderer(cfg config.Config, out io.Writer, in io.Reader, logger *slog.Logger) renderer.Renderer {
	switch cfg.Renderer {
	case config.RendererEbiten:
		return ebiten.New(cfg.TileSize, cfg.ThermalScale(), logger)
	default:
		return tui.New(out, in, cfg.ThermalScale())
	}
}
