package main

import (
	"os"

	"pybootstrap/cmd"
	"pybootstrap/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
