package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate one or more 14-tile hands"`
	Survey  SurveyCmd        `cmd:"" help:"Deal random hands and tally the results"`
	Serve   ServeCmd         `cmd:"" help:"Run the websocket evaluation service"`
	TUI     TUICmd           `cmd:"tui" help:"Evaluate hands interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("riichi"),
		kong.Description("Riichi mahjong hand completeness and yaku evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
