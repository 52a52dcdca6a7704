package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/alloc"
)

func runMint(args []string, log *slog.Logger) error {
	fs := newFlagSet("mint")
	rf := addRenderFlags(fs)
	store := fs.String("store", "mints.json", "collection store")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ledger, err := alloc.Open(*store)
	if err != nil {
		return err
	}
	log.Debug("store opened", "path", ledger.Path(), "minted", ledger.Count())

	if *rf.seed != 0 && !ledger.IsAvailable(*rf.seed) {
		return spiro.ErrSeedTaken
	}
	out, err := render(rf, log, spiro.WithAllocator(ledger))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	md, err := out.renderer.Mint(ctx)
	if err != nil {
		return err
	}
	if err := ledger.Save(alloc.NewRecord(md, out.png, out.gif, time.Now())); err != nil {
		return err
	}
	log.Info("minted", "name", md.Name, "minted", ledger.Count(), "of", alloc.Capacity)
	return nil
}
