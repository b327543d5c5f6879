package main

import (
	"fmt"
	"os"

	"github.com/corvidlabs/slither/slither"
	"gopkg.in/urfave/cli.v1"
)

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "execute a slither source file",
	ArgsUsage: "<script>",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "recursion-limit",
			Value: 0,
			Usage: "maximum call-stack depth before a RuntimeError is raised (default 256)",
		},
	},
	Action: runAction,
}

func runAction(ctx *cli.Context) error {
	path, err := scriptPathArg(ctx)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	interp := slither.NewInterpreter(slither.Config{
		Output:         os.Stdout,
		RecursionLimit: ctx.Int("recursion-limit"),
	})
	if err := interp.Run(string(source)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func scriptPathArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("%s: exactly one script path is required", ctx.Command.Name)
	}
	return ctx.Args().First(), nil
}
