// Command ggsoft renders a YAML scene with the software backend and writes
// the last frame to an image file.
//
// Usage:
//
//	ggsoft -scene ui.yaml -output ui.png [-config ggsoft.toml] [-width 800] [-height 600]
//
// Text is measured once before the first frame, the way a UI layout pass
// would, so every frame draws from the layout cache.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggsoft"
	"github.com/gogpu/ggsoft/backend"
	"github.com/gogpu/ggsoft/compositor"
	"github.com/gogpu/ggsoft/primitive"
)

// lines collects a repeatable string flag.
type lines []string

func (l *lines) String() string { return strings.Join(*l, ", ") }

func (l *lines) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "ggsoft:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stderr io.Writer) error {
	fs := flag.NewFlagSet("ggsoft", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		config     = fs.String("config", "", "settings file (.yaml, .yml or .toml)")
		scenePath  = fs.String("scene", "", "scene file, or - for stdin")
		width      = fs.Uint("width", 800, "frame width in pixels")
		height     = fs.Uint("height", 600, "frame height in pixels")
		scale      = fs.Float64("scale", 1, "scale factor between logical and physical pixels")
		background = fs.String("background", "#ffffff", "background color (#rrggbb or #rrggbbaa)")
		frames     = fs.Int("frames", 1, "number of frames to draw")
		output     = fs.String("output", "", "output image, overrides the settings file")
		verbose    = fs.Bool("v", false, "log debug output")
		overlay    lines
	)
	fs.Var(&overlay, "overlay", "overlay text line (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggsoft.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer ggsoft.SetLogger(nil)
	log := ggsoft.Logger()

	if *scenePath == "" {
		return errors.New("missing -scene")
	}
	if *frames < 1 {
		return fmt.Errorf("invalid -frames %d", *frames)
	}

	settings, err := loadSettings(*config)
	if err != nil {
		return err
	}
	if *output != "" {
		settings.Output = *output
	}

	bg, err := primitive.ParseHex(*background)
	if err != nil {
		return fmt.Errorf("invalid -background: %w", err)
	}

	root, interaction, err := loadScene(*scenePath, stdin)
	if err != nil {
		return err
	}

	c, b, err := compositor.New(settings)
	if err != nil {
		return err
	}
	sc := c.CreateSwapChain(c.CreateSurface(), uint32(*width), uint32(*height))
	viewport := backend.NewViewport(uint32(*width), uint32(*height), *scale)

	measured := 0
	primitive.Walk(root, func(p primitive.Primitive) bool {
		if t, ok := p.(primitive.Text); ok {
			b.Measure(t.Content, t.Size, t.Font, t.Bounds.Size())
			measured++
		}
		return true
	})
	log.Debug("ggsoft: layout pass done", "texts", measured)

	out := backend.Output{Primitive: root, Interaction: interaction}
	for i := range *frames {
		got, err := c.Draw(b, sc, viewport, bg, out, overlay)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		interaction = got
	}

	stats := b.Stats()
	log.Info("ggsoft: done",
		"frames", c.FramesPresented(),
		"output", settings.Output,
		"interaction", interaction.String(),
		"layout_hits", stats.Layouts.Hits,
		"inline_layouts", stats.InlineLayouts,
		"glyphs", stats.Glyphs.Len)
	return nil
}

func loadSettings(path string) (ggsoft.Settings, error) {
	if path == "" {
		return ggsoft.DefaultSettings(), nil
	}
	return ggsoft.LoadSettings(path)
}

// loadScene decodes the scene at path. Font paths in the scene are relative
// to the scene file.
func loadScene(path string, stdin io.Reader) (primitive.Primitive, primitive.Interaction, error) {
	if path == "-" {
		return primitive.DecodeScene(stdin)
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, primitive.Idle, err
	}
	defer f.Close()

	dir := filepath.Dir(path)
	loader := func(font string) ([]byte, error) {
		if !filepath.IsAbs(font) {
			font = filepath.Join(dir, font)
		}
		return os.ReadFile(font) //nolint:gosec // font paths come from the scene file
	}
	root, interaction, err := primitive.DecodeScene(f, primitive.WithFontLoader(loader))
	if err != nil {
		return nil, primitive.Idle, fmt.Errorf("scene %s: %w", path, err)
	}
	return root, interaction, nil
}
