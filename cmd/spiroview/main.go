// Command spiroview animates spirographs in the terminal.
//
// Keys: n draws a new seed, s saves the current image as PNG, space pauses,
// q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/export"
	"github.com/gogpu/spiro/pattern"
	"github.com/gogpu/spiro/preview"
)

type viewer struct {
	screen   tcell.Screen
	renderer *spiro.Renderer
	log      *slog.Logger

	paused    bool
	auto      time.Duration
	doneAt    time.Time
	status    string
	statusEnd time.Time
}

func main() {
	var (
		seed    = flag.Int("seed", 0, "first seed to draw; 0 picks one")
		policy  = flag.String("policy", "multi", "layer policy: multi or lerp")
		fps     = flag.Int("fps", spiro.DefaultFrameRate, "ticks per second")
		auto    = flag.Duration("auto", 0, "draw a new seed this long after each completes; 0 waits for n")
		logPath = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	log := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.Create(*logPath) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			fmt.Fprintf(os.Stderr, "spiroview: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	spiro.SetLogger(log)

	p, err := spiro.ParsePolicy(*policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spiroview: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spiroview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "spiroview: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{
		screen:   screen,
		renderer: spiro.New(spiro.WithPolicy(p)),
		log:      log,
		auto:     *auto,
	}
	if pattern.ValidSeed(*seed) {
		v.renderer.SetSeed(*seed)
	} else {
		v.regenerate()
	}
	v.run(*fps)
}

func (v *viewer) run(fps int) {
	if fps <= 0 {
		fps = spiro.DefaultFrameRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return
			}
			v.draw()

		case now := <-ticker.C:
			v.step(now)
			v.draw()
		}
	}
}

// step advances the drawing by one tick.
func (v *viewer) step(now time.Time) {
	if v.paused {
		return
	}
	switch v.renderer.State().Phase {
	case spiro.PhaseDrawing:
		if v.renderer.Tick() {
			v.doneAt = now
		}
	case spiro.PhaseComplete:
		if v.auto > 0 && now.Sub(v.doneAt) >= v.auto {
			v.regenerate()
		}
	}
}

// handle reacts to a terminal event and reports whether to keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			return false
		case ev.Rune() == 'n':
			v.regenerate()
		case ev.Rune() == 's':
			v.save()
		case ev.Rune() == ' ':
			v.paused = !v.paused
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) regenerate() {
	seed, err := v.renderer.Regenerate()
	if err != nil {
		v.flash(err.Error())
		return
	}
	v.log.Debug("new seed", "seed", seed)
}

func (v *viewer) save() {
	var img image.Image = v.renderer.Final()
	if v.renderer.Final() == nil {
		img = v.renderer.Preview()
	}
	name := export.PNGName(v.renderer.Seed())
	f, err := os.Create(name) //nolint:gosec // name is derived from the seed
	if err != nil {
		v.flash(err.Error())
		return
	}
	if err := export.WritePNG(f, img); err != nil {
		_ = f.Close()
		v.flash(err.Error())
		return
	}
	if err := f.Close(); err != nil {
		v.flash(err.Error())
		return
	}
	v.flash("saved " + name)
}

func (v *viewer) flash(msg string) {
	v.status = msg
	v.statusEnd = time.Now().Add(3 * time.Second)
}

func (v *viewer) draw() {
	w, h := v.screen.Size()
	if h < 2 {
		return
	}
	preview.PaintRect(v.screen, v.renderer.Preview(), image.Rect(0, 0, w, h-1))
	v.drawStatus(w, h-1)
	v.screen.Show()
}

func (v *viewer) drawStatus(w, y int) {
	line := v.statusLine(w)
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

const (
	keyHints      = "n: new  s: save  space: pause  q: quit"
	keyHintsTerse = "n s spc  q: quit"
)

// statusLine fits the status into width columns. Key hints are kept and
// right-aligned; pattern details are dropped from the right when short on room.
func (v *viewer) statusLine(width int) string {
	if v.status != "" && time.Now().Before(v.statusEnd) {
		return v.status
	}
	st := v.renderer.State()
	plan := v.renderer.Plan()
	if plan == nil {
		return fitStatus(width, []string{""}, "n: new  q: quit")
	}
	spec := plan.Spec()
	state := fmt.Sprintf("%3d%%", st.Progress)
	if v.paused {
		state = "paused"
	} else if st.Phase == spiro.PhaseComplete {
		state = "done"
	}
	name := spiro.Name(spec.Seed)
	details := []string{
		fmt.Sprintf(" %s  %s (%s)  %s  %s", name, spec.Family, spec.Rarity, plan.Palette().Name, state),
		fmt.Sprintf(" %s  %s (%s)  %s", name, spec.Family, spec.Rarity, state),
		fmt.Sprintf(" %s  %s", name, state),
		" " + state,
	}
	return fitStatus(width, details, keyHints, keyHintsTerse)
}

// fitStatus returns the first details/hints pair that fits width, with the
// hints pushed to the right edge. The last hints win when nothing fits.
func fitStatus(width int, details []string, hints ...string) string {
	for _, d := range details {
		for _, h := range hints {
			n := utf8.RuneCountInString(d) + utf8.RuneCountInString(h)
			if n+2 <= width {
				return d + strings.Repeat(" ", width-n-1) + h + " "
			}
		}
	}
	h := hints[len(hints)-1]
	if pad := width - utf8.RuneCountInString(h); pad > 0 {
		return strings.Repeat(" ", pad) + h
	}
	return h
}
