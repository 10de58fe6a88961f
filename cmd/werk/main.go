package main

import (
	"os"

	"github.com/ayoisaiah/werk/app"
	"github.com/ayoisaiah/werk/internal/apperr"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		app.PrintError(err)
		os.Exit(apperr.ExitCode(err))
	}
}
