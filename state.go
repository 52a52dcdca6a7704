package spiro

import (
	"fmt"
	"math"

	"github.com/gogpu/spiro/curve"
)

// Phase is the compositor lifecycle stage.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDrawing
	PhaseComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDrawing:
		return "Drawing"
	case PhaseComplete:
		return "Complete"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// State is the mutable part of a drawing cycle. It is a plain value: Advance
// returns the next State instead of changing its argument.
type State struct {
	Phase Phase

	// Step counts sub-steps taken; the curve position is Step·TickStep.
	Step int
	// Ticks counts Advance calls that did work.
	Ticks int
	// T is the curve position the next sub-step evaluates.
	T float64

	// Prev is the scaled, unrotated point of the previous sub-step.
	Prev    curve.Point
	HasPrev bool

	// Layer is the palette layer active for the next segment.
	Layer int
	// Progress is the cycle progress in percent.
	Progress int
}

// Segment is one stroke produced by a sub-step. From and To are in canvas
// coordinates centred on the origin, with the rotation at T1 applied.
type Segment struct {
	From, To curve.Point
	Layer    int
	T0, T1   float64
}

// Start returns the initial state of a cycle.
func (p *Plan) Start() State {
	return State{Phase: PhaseDrawing, Layer: p.LayerAt(0, 0)}
}

// Advance performs one tick: SubSteps curve evaluations, each producing a
// segment from the previous point once one exists. A state that is not
// drawing is returned unchanged with no segments.
func (p *Plan) Advance(s State) (State, []Segment) {
	if s.Phase != PhaseDrawing {
		return s, nil
	}

	segs := make([]Segment, 0, p.subSteps)
	for i := 0; i < p.subSteps; i++ {
		t := float64(s.Step) * p.tickStep
		pt := p.Point(t)
		if s.HasPrev {
			theta := p.Rotation(t)
			segs = append(segs, Segment{
				From:  s.Prev.Rotate(theta),
				To:    pt.Rotate(theta),
				Layer: s.Layer,
				T0:    float64(s.Step-1) * p.tickStep,
				T1:    t,
			})
		}
		s.Prev, s.HasPrev = pt, true

		s.Step++
		s.T = float64(s.Step) * p.tickStep
		s.Layer = p.LayerAt(s.Layer, s.T)
	}

	s.Ticks++
	s.Progress = int(math.Round(100 * math.Min(1, s.T/p.spec.MaxT)))
	if s.Ticks >= p.totalTicks {
		s.Phase = PhaseComplete
	}
	return s, segs
}
