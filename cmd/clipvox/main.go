package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/clipvox/internal/app"
)

const usage = `usage: clipvox [--debug]

Keeps a clipboard history and reads it back through VoiceOver.
Configuration: $CLIPVOX_CONFIG_HOME/config.toml or ~/.config/clipvox/config.toml
`

func main() {
	debug := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--":
		case "--debug", "-d":
			debug = true
		case "--help", "-h":
			fmt.Print(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "clipvox: unknown argument %q\n%s", arg, usage)
			os.Exit(2)
		}
	}
	if err := app.New(debug).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "clipvox:", err)
		os.Exit(1)
	}
}
