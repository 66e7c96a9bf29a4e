package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/rulewalk/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "rulewalk"
	app.Usage = "Rule-based linter for TypeScript sources"
	app.Description = "Walks the syntax tree of each file and reports the failures found by the configured rules"
	app.Commands = []*cli.Command{
		cmd.LintCommand,
		cmd.RulesCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
