// Command spiro renders, inspects and mints spirograph patterns.
//
// Usage:
//
//	spiro render [-seed N] [-out file.png] [-gif file.gif] [-meta file.json]
//	spiro stats [-n 10000]
//	spiro mint [-seed N] -store mints.json
//	spiro collection -store mints.json [-remove ID]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/spiro"
)

type command struct {
	name  string
	usage string
	run   func(args []string, log *slog.Logger) error
}

var commands = []command{
	{"render", "render a seed to PNG, optionally with a GIF and metadata", runRender},
	{"stats", "print family and palette proportions over a seed range", runStats},
	{"mint", "render a seed and reserve it in a collection store", runMint},
	{"collection", "list or edit the records of a collection store", runCollection},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	name, args := os.Args[1], os.Args[2:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		log := newLogger(args)
		spiro.SetLogger(log)
		if err := c.run(args, log); err != nil {
			log.Error(c.name+" failed", "err", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "spiro: unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: spiro <command> [flags]")
	fmt.Fprintln(os.Stderr)
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-11s %s\n", c.name, c.usage)
	}
}

// newLogger builds the command logger before flags are parsed so that
// parse errors are logged the same way as everything else.
func newLogger(args []string) *slog.Logger {
	level := slog.LevelInfo
	for _, a := range args {
		if a == "-v" || a == "--v" || a == "-v=true" {
			level = slog.LevelDebug
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newFlagSet returns a flag set with the flags every command shares.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("spiro "+name, flag.ExitOnError)
	fs.Bool("v", false, "verbose logging")
	return fs
}
