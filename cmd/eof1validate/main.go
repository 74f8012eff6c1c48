// Command eof1validate validates, inspects, and mutates EOF-v1 containers.
//
// Usage:
//
//	eof1validate validate --hex <container>
//	eof1validate read-header --hex <container>
//	eof1validate append-data --hex <container> --data <aux-hex>
//	eof1validate serve --listen :8585
//	eof1validate replay < containers.txt
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	applog "github.com/eof2030/eof1validate/log"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// run is the actual entry point, returning an exit code so it can be tested
// in isolation, mirroring the reference client's cmd/eth2030 main.go.
func run(args []string) int {
	app := &cli.App{
		Name:    "eof1validate",
		Usage:   "validate and inspect EOF-v1 containers",
		Version: version,
		Commands: []*cli.Command{
			validateCommand(),
			readHeaderCommand(),
			appendDataCommand(),
			serveCommand(),
			replayCommand(),
		},
		// Disable the default ExitErrHandler, which calls os.Exit directly
		// on an ExitCoder error: that would terminate the process (and the
		// test binary) before run() gets a chance to return its exit code.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	if err := app.Run(args); err != nil {
		applog.Default().Module("cli").Error("command failed", "error", err, "commit", commit)
		if ec, ok := err.(cli.ExitCoder); ok {
			return ec.ExitCode()
		}
		return 1
	}
	return 0
}
