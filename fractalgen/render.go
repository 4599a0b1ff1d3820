package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/scottkirkwood/lgart"
	"github.com/scottkirkwood/lgart/config"
	"github.com/scottkirkwood/lgart/level"
	"github.com/scottkirkwood/lgart/scene"
	"github.com/spf13/cobra"
)

var (
	outDir  string
	format  string
	backend string
	frames  int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the fractal and the game preview to files",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		r, err := newRenderer(slog.Default(), outDir, format, backend)
		if err != nil {
			return err
		}
		_, err = r.Pass(p, frames)
		return err
	},
}

func init() {
	addOutputFlags(renderCmd)
	renderCmd.Flags().IntVar(&frames, "frames", 1, "number of preview frames to write")
	addParamFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outDir, "out", "samples", "output folder")
	cmd.Flags().StringVar(&format, "format", "png", "png, svg or pdf")
	cmd.Flags().StringVar(&backend, "backend", "canvas", "canvas (vector) or gg (raster, png only)")
}

// renderer draws passes to files. The preview sprite carries over from one
// pass to the next.
type renderer struct {
	log     *slog.Logger
	out     string
	ext     string
	backend string
	sprite  level.Sprite
}

func newRenderer(log *slog.Logger, out, format, backend string) (*renderer, error) {
	switch format {
	case "png", "svg", "pdf":
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	switch backend {
	case "canvas":
	case "gg":
		if format != "png" {
			return nil, fmt.Errorf("the gg backend only writes png, not %q", format)
		}
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
	return &renderer{
		log:     log,
		out:     out,
		ext:     "." + format,
		backend: backend,
		sprite:  level.NewSprite(),
	}, nil
}

func (r *renderer) surface(p config.Params) lgart.Exporter {
	if r.backend == "gg" {
		return lgart.NewRaster(int(p.Width), int(p.Height))
	}
	return lgart.NewContext(p.Width, p.Height)
}

// Pass draws the fractal once and `frames` preview frames, returning the
// files written. Nothing is written when the fractal fails, so the previous
// output stays in place. A level that cannot be generated does not hold
// back the fractal; the preview then shows only the ground.
func (r *renderer) Pass(p config.Params, frames int) ([]string, error) {
	key, err := p.Marshal()
	if err != nil {
		return nil, err
	}
	stamp := lgart.NewStamp(key)

	fractal := r.surface(p)
	if err := scene.Fractal(fractal, p); err != nil {
		return nil, fmt.Errorf("generating fractal: %w", err)
	}

	var written []string
	fname, err := stamp.SafeWrite(fractal, filepath.Join(r.out, "fractal-"), r.ext)
	if err != nil {
		return written, err
	}
	written = append(written, fname)

	lvl, err := scene.Level(p)
	if err != nil {
		r.log.Warn("level failed, previewing the ground only", "mode", p.Mode, "depth", p.Depth, "err", err)
		lvl = level.Ground(p.Width, p.Height)
	}

	for i := 0; i < frames; i++ {
		preview := r.surface(p)
		r.sprite = scene.Preview(preview, lvl, r.sprite, p.Width, p.Height)
		fname, err := stamp.SafeWrite(preview, filepath.Join(r.out, "preview-"), fmt.Sprintf("-%02d%s", i, r.ext))
		if err != nil {
			return written, err
		}
		written = append(written, fname)
	}
	r.log.Debug("pass done", "mode", p.Mode, "depth", p.Depth, "platforms", len(lvl.Platforms), "files", len(written))
	return written, nil
}
