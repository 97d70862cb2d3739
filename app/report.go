package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AnkushinDaniil/aep/entity/parameters"
)

const reportHeader = "Final AEP Parameters:"

// writeReport prints one "%12s = %.6e" line per parameter. The header is
// separated from preceding status lines by a blank line.
func writeReport(w io.Writer, p parameters.Parameters, afterProgress bool) error {
	if afterProgress {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, reportHeader); err != nil {
		return err
	}
	for _, f := range p.Fields() {
		if _, err := fmt.Fprintf(w, "%12s = %.6e\n", f.Name, f.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, p parameters.Parameters) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
