package main

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/spiro/alloc"
)

func runCollection(args []string, log *slog.Logger) error {
	fs := newFlagSet("collection")
	store := fs.String("store", "mints.json", "collection store")
	remove := fs.Int("remove", 0, "remove the record with this id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ledger, err := alloc.Open(*store)
	if err != nil {
		return err
	}
	if *remove != 0 {
		if err := ledger.Remove(*remove); err != nil {
			return err
		}
		log.Info("record removed", "id", *remove)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stdout, "%d of %d designs minted, %d in collection\n\n",
		ledger.Count(), alloc.Capacity, len(ledger.Records()))
	for _, r := range ledger.Records() {
		p.Fprintf(os.Stdout, "  %-18s %-13s %-11s %-15s %s  %s\n",
			r.Name, r.Params.Shape, r.Params.Rarity, r.Palette,
			r.MintDate.Format("2006-01-02"), strings.Join(r.Params.Colors, " "))
	}
	return nil
}
