package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func jsonOutput() bool {
	return rootFlags.Output == "json"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func validateOutput() error {
	switch rootFlags.Output {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", rootFlags.Output)
	}
}
