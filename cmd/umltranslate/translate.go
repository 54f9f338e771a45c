package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umltranslator/translator-go/internal/canonicaljson"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/deserializer"
	"github.com/umltranslator/translator-go/internal/ports"
	"github.com/umltranslator/translator-go/internal/strategy"
)

type translateOptions struct {
	strict bool
}

// newTranslateCmd builds the "translate" subcommand: it reads every path
// argument as a DataSource, runs them through one Deserializer Facade (so a
// Papyrus .uml/.notation pair supplied as two arguments shares a Builder),
// and writes the resulting canonical Model as JSON to stdout.
func newTranslateCmd(root *rootFlags, log ports.Logger) *cobra.Command {
	opts := translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate <path...>",
		Short: "Deserialize one or more UML interchange files into the canonical JSON model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd.Context(), root, opts, args, log)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", true, "Fail the translation on any unresolved reference instead of leaving it null")

	return cmd
}

func runTranslate(ctx context.Context, root *rootFlags, opts translateOptions, paths []string, log ports.Logger) error {
	var pinned strategy.Format
	switch root.format {
	case "":
		pinned = ""
	case "ea-xmi", "papyrus", "staruml":
		pinned = strategy.Format(root.format)
	default:
		return fmt.Errorf("unknown --format %q: must be one of ea-xmi, papyrus, staruml", root.format)
	}

	facade := deserializer.New(deserializer.Options{
		Logger: log,
		Strict: opts.strict,
		Format: pinned,
	})

	m, err := facade.Deserialize(ctx, datasource.Inputs{FilePaths: paths})
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(canonicaljson.Export(m))
}
