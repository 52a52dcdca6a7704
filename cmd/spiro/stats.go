package main

import (
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/spiro/internal/parallel"
	"github.com/gogpu/spiro/pattern"
)

func runStats(args []string, log *slog.Logger) error {
	fs := newFlagSet("stats")
	n := fs.Int("n", pattern.MaxSeed, "number of seeds to scan, starting at 1")
	if err := fs.Parse(args); err != nil {
		return err
	}

	families, palettes := census(max(*n, 0))
	log.Debug("seeds scanned", "n", *n)

	p := message.NewPrinter(language.English)
	total := float64(max(*n, 1))
	p.Fprintf(os.Stdout, "%d seeds\n\nShapes\n", *n)
	for _, f := range pattern.Families {
		p.Fprintf(os.Stdout, "  %-14s %-11s %7d  %6.2f%%  (expected %5.1f%%)\n",
			f, f.Rarity(), families[f], 100*float64(families[f])/total, f.Rarity().Weight())
	}
	p.Fprintf(os.Stdout, "\nPalettes\n")
	for _, pal := range pattern.Palettes() {
		p.Fprintf(os.Stdout, "  %-14s %-11s %7d  %6.2f%%  (expected %5.1f%%)\n",
			pal.Name, pal.Rarity, palettes[pal.Name], 100*float64(palettes[pal.Name])/total, pal.Rarity.Weight())
	}
	return nil
}

// census generates seeds 1..n on a worker pool and counts families and
// palettes.
func census(n int) (map[pattern.Family]int, map[string]int) {
	specs := make([]pattern.Spec, n)
	pals := make([]string, n)

	pool := parallel.NewWorkerPool(0)
	defer pool.Close()
	pool.ForEach(n, func(i int) {
		spec, pal := pattern.Generate(i + 1)
		specs[i], pals[i] = spec, pal.Name
	})

	families := make(map[pattern.Family]int)
	palettes := make(map[string]int)
	for i := range n {
		families[specs[i].Family]++
		palettes[pals[i]]++
	}
	return families, palettes
}
