package main

import (
	"github.com/alecthomas/kong"

	"genicons/icons"
)

func main() {
	cmd := &icons.CLICmd{}
	kctx := kong.Parse(cmd,
		kong.Name("genicons"),
		kong.Description("Generate browser extension icons from a master image."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(cmd.Run())
}
