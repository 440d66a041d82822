package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/validators"
	"nextsite-backend/infrastructure/di"
)

// gensite reads a client brief as JSON and writes the generated site
// specification to stdout. Useful for snapshotting generator output in CI and
// diffing two builds of the rule tables.
func main() {
	var (
		input  = flag.String("input", "-", "brief JSON file, - for stdin")
		pretty = flag.Bool("pretty", false, "indent the output")
	)
	flag.Parse()

	brief, err := readBrief(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gensite: %v\n", err)
		os.Exit(1)
	}

	if err := validators.NewBriefValidator().Validate(brief); err != nil {
		fmt.Fprintf(os.Stderr, "gensite: invalid brief: %v\n", err)
		os.Exit(1)
	}

	spec := di.ProvideSpecAssembler().Assemble(brief)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(spec); err != nil {
		fmt.Fprintf(os.Stderr, "gensite: encoding specification: %v\n", err)
		os.Exit(1)
	}
}

func readBrief(path string) (entities.ClientBrief, error) {
	var brief entities.ClientBrief

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return brief, err
		}
		defer f.Close()
		in = f
	}

	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&brief); err != nil {
		return brief, fmt.Errorf("decoding brief: %w", err)
	}
	return brief, nil
}
