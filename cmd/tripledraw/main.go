package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to HCL config file" default:"tripledraw.hcl"`
	LogLevel string           `help:"Override the configured log level" enum:"debug,info,warn,error," default:""`

	Simulate SimulateCmd `cmd:"" help:"Run bot-vs-bot simulations"`
	Play     PlayCmd     `cmd:"" help:"Play a hand of triple draw against the bots"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tripledraw"),
		kong.Description("Deuce-to-seven triple draw lowball engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
