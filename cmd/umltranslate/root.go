package main

import (
	"github.com/spf13/cobra"

	"github.com/umltranslator/translator-go/internal/ports"
)

type rootFlags struct {
	verbose bool
	format  string
}

func newRootCmd(log ports.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "umltranslate",
		Short:         "umltranslate deserializes UML interchange files into a canonical model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Accepted but not read; the log level stays at info")
	cmd.PersistentFlags().StringVar(&flags.format, "format", "", "Pin every input to one dialect (ea-xmi, papyrus, staruml) instead of auto-detecting")

	cmd.AddCommand(newTranslateCmd(flags, log))

	return cmd
}
