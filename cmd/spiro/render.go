package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/export"
	"github.com/gogpu/spiro/pattern"
)

// gifFrames is roughly how many frames a drawing animation has.
const gifFrames = 120

// renderFlags are shared by render and mint.
type renderFlags struct {
	seed   *int
	size   *int
	margin *float64
	stroke *float64
	policy *string
	out    *string
	gif    *string
	meta   *string
	label  *bool
	opaque *bool
}

func addRenderFlags(fs *flag.FlagSet) renderFlags {
	return renderFlags{
		seed:   fs.Int("seed", 0, "seed in [1, 10000]; 0 picks one"),
		size:   fs.Int("size", spiro.DefaultCanvasSize, "canvas size in pixels"),
		margin: fs.Float64("margin", spiro.DefaultMargin, "margin in pixels"),
		stroke: fs.Float64("stroke", spiro.DefaultStrokeWidth, "stroke width in pixels"),
		policy: fs.String("policy", "multi", "layer policy: multi or lerp"),
		out:    fs.String("out", "", "PNG output (default spirograph_<seed>.png)"),
		gif:    fs.String("gif", "", "also write the drawing animation as GIF"),
		meta:   fs.String("meta", "", "also write metadata JSON"),
		label:  fs.Bool("label", false, "caption the PNG with the pattern name"),
		opaque: fs.Bool("opaque", false, "flatten the PNG over a black background"),
	}
}

// rendered is the outcome of a render.
type rendered struct {
	renderer *spiro.Renderer
	md       spiro.Metadata
	png      string
	gif      string
}

func runRender(args []string, log *slog.Logger) error {
	fs := newFlagSet("render")
	rf := addRenderFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, err := render(rf, log)
	return err
}

func render(rf renderFlags, log *slog.Logger, extra ...spiro.Option) (*rendered, error) {
	policy, err := spiro.ParsePolicy(*rf.policy)
	if err != nil {
		return nil, err
	}
	opts := append([]spiro.Option{
		spiro.WithCanvas(*rf.size, *rf.margin),
		spiro.WithStrokeWidth(*rf.stroke),
		spiro.WithPolicy(policy),
	}, extra...)
	r := spiro.New(opts...)

	if *rf.seed != 0 {
		if !pattern.ValidSeed(*rf.seed) {
			return nil, fmt.Errorf("seed %d outside [%d, %d]", *rf.seed, pattern.MinSeed, pattern.MaxSeed)
		}
		r.SetSeed(*rf.seed)
	} else if _, err := r.Regenerate(); err != nil {
		return nil, err
	}
	seed := r.Seed()

	var anim *export.Animation
	if *rf.gif != "" {
		every := max(1, r.Plan().TotalTicks()/gifFrames)
		anim = export.NewAnimation(
			export.FrameEvery(every),
			export.FrameSize(min(export.DefaultFrameSize, *rf.size)),
			export.HoldLast(2*time.Second),
		)
	}
	for r.State().Phase == spiro.PhaseDrawing {
		r.Tick()
		if anim != nil {
			anim.Capture(r.Preview())
		}
	}
	md := r.Metadata()
	out := &rendered{renderer: r, md: md}

	var img image.Image = r.Final()
	if *rf.opaque || *rf.label {
		flat := export.Flatten(img, color.Black)
		if *rf.label {
			export.Caption(flat, md.Name, color.White)
		}
		img = flat
	}

	out.png = *rf.out
	if out.png == "" {
		out.png = export.PNGName(seed)
	}
	if err := writeFile(out.png, func(w io.Writer) error { return export.WritePNG(w, img) }); err != nil {
		return nil, err
	}
	log.Info("png written", "path", out.png, "seed", seed, "shape", md.Family, "rarity", md.Rarity)

	if anim != nil {
		anim.Add(r.Final())
		out.gif = *rf.gif
		if err := writeFile(out.gif, anim.Encode); err != nil {
			return nil, err
		}
		log.Info("gif written", "path", out.gif, "frames", anim.Len())
	}
	if *rf.meta != "" {
		if err := writeFile(*rf.meta, func(w io.Writer) error { return export.WriteMetadata(w, md) }); err != nil {
			return nil, err
		}
		log.Info("metadata written", "path", *rf.meta)
	}
	return out, nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
