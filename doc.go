// Package spiro draws deterministic spirograph patterns incrementally.
//
// # Overview
//
// Every seed in [1, 10000] maps to exactly one pattern: a curve family with
// its parameters and a five-colour palette (see package pattern). The
// pattern is drawn a few segments per display tick so that a viewer can
// watch it grow, and the finished drawing is handed out as a transparent
// image with one layer per palette colour merged in order.
//
// # Quick Start
//
//	import "github.com/gogpu/spiro"
//
//	r := spiro.New()
//	r.SetSeed(4242)
//	img := r.Finish()
//	_ = img.SavePNG("spirograph_4242.png")
//
// # Driving a cycle
//
// A cycle has three phases: Idle, Drawing and Complete. Renderer.Run ticks
// at the configured frame rate until the cycle completes; Renderer.Tick lets
// the caller own the clock instead. Regenerate or SetSeed drop the cycle in
// progress and start a new one.
//
// The drawing step itself is a pure function, Plan.Advance, which maps a
// State to the next State and the segments produced on the way. Compositor
// strokes those segments into pixel buffers.
//
// # Layers
//
// A LayerPolicy decides which buffer a segment goes to and which colour it
// is drawn in. MultiBuffer keeps one buffer per palette colour and switches
// colour at evenly spaced breakpoints. ColorLerp draws into a single buffer
// and sweeps the colour continuously through the palette.
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger to see
// generation details at debug level and cycle completion at info level.
package spiro
