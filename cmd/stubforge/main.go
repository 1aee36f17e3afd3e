package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "stubforge",
		Short:   "stubforge - test skeleton generation",
		Long:    `stubforge stamps out test skeletons for pytest, unittest, jest, mocha, and junit from JSON specifications.`,
		Version: version,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(frameworksCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
