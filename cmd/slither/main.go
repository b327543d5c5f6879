// Command slither runs programs written in the slither language: lex,
// parse, and evaluate a source file, or drop into an interactive REPL.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "slither"
	app.Usage = "an interpreter for the slither scripting language"
	app.Version = version
	app.Commands = []cli.Command{
		runCommand,
		checkCommand,
		replCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
