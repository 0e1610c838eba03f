// Command vibed runs a booking escrow node behind tendermint.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/vibe-network/vibe"
	vibed "github.com/vibe-network/vibe/cmd/vibed/app"
	"github.com/vibe-network/vibe/commands/server"
)

var (
	home     = flag.String("home", filepath.Join(os.ExpandEnv("$HOME"), ".vibed"), "directory to store files under")
	logLevel = flag.String("log_level", "info", "lowest level logged: debug, info, error or none")
)

type command struct {
	name string
	help string
	run  func(logger log.Logger, args []string) error
}

var commands = []command{
	{"init", "Initialize app options in genesis file", func(logger log.Logger, args []string) error {
		return server.InitCmd(vibed.GenInitOptions, logger, *home, args)
	}},
	{"start", "Run the abci server", func(logger log.Logger, args []string) error {
		return server.StartCmd(vibed.GenerateApp, logger, *home, args)
	}},
	{"validate", "Check the app_state of genesis files", func(_ log.Logger, args []string) error {
		return server.ValidateGenesis(vibed.Initializers(), args)
	}},
	{"version", "Print the app version", func(log.Logger, []string) error {
		fmt.Println(vibe.Version())
		return nil
	}},
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "vibed [flags] <command> [args]\n\nBooking escrow node\n\n")
	fmt.Fprintf(out, "  %-9s %s\n", "help", "Print this message")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-9s %s\n", c.name, c.help)
	}
	fmt.Fprintln(out)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		fail(fmt.Errorf("missing command"))
	}

	allowed, err := log.AllowLevel(*logLevel)
	if err != nil {
		fail(err)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stdout)), allowed).
		With("module", "vibe")

	name, args := flag.Arg(0), flag.Args()[1:]
	if name == "help" {
		usage()
		return
	}
	for _, c := range commands {
		if c.name == name {
			if err := c.run(logger, args); err != nil {
				fail(err)
			}
			return
		}
	}
	fail(fmt.Errorf("unknown command: %s", name))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %+v\n\n", err)
	usage()
	os.Exit(1)
}
