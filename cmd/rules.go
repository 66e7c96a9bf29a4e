package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rulewalk/analyzer/rules"
)

var JSONFlag = &cli.BoolFlag{
	Name:     "json",
	Usage:    "print rule metadata as JSON",
	Required: false,
	Value:    false,
}

func CreateRulesCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "rules",
		Usage:       "Lists the available rules",
		Description: "Lists the available rules with their options and failure messages",
		Action:      action,
		Flags: []cli.Flag{
			JSONFlag,
		},
	}
}

var RulesCommand = CreateRulesCommand(ListRules)

func ListRules(ctx *cli.Context) error {
	out := ctx.App.Writer
	if ctx.Bool(JSONFlag.Name) {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rules.All())
	}

	var report strings.Builder
	for _, md := range rules.All() {
		fmt.Fprintf(&report, "%s\n    %s\n", md.Name, md.Description)
		if len(md.Options) > 0 {
			fmt.Fprintf(&report, "    options: %s\n", strings.Join(md.Options, ", "))
		}
		for _, msg := range md.Messages {
			fmt.Fprintf(&report, "    - %s\n", msg)
		}
	}
	_, err := out.Write([]byte(report.String()))
	return err
}
