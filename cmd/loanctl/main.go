// loanctl is a terminal frontend for the loan tracker.
package main

import (
	"os"

	"github.com/loan-tracker/backend/cmd/loanctl/commands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("LOANCTL_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	commands.Execute()
}
