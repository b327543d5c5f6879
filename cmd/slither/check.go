package main

import (
	"fmt"
	"os"

	"github.com/corvidlabs/slither/slither"
	"gopkg.in/urfave/cli.v1"
)

var checkCommand = cli.Command{
	Name:      "check",
	Usage:     "lex and parse a slither source file without running it",
	ArgsUsage: "<script>",
	Action:    checkAction,
}

func checkAction(ctx *cli.Context) error {
	path, err := scriptPathArg(ctx)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	interp := slither.NewInterpreter(slither.Config{Output: os.Stdout})
	if err := interp.Check(string(source)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Printf("%s: ok\n", path)
	return nil
}
