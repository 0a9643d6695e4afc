package outwriter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// renderSectionTable writes one titled table section. Every text view
// is a sequence of these.
func renderSectionTable(w io.Writer, title string, headers []string, data [][]string) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)

	// Numbers dominate every view, so right-align rows globally.
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
