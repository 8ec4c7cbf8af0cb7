package insight

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Render writes r as a plain-text insight panel. It accepts any Result,
// including the zero value.
func Render(w io.Writer, r Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	kind := r.Kind
	if kind == "" {
		kind = KindUnknown
	}
	fmt.Fprintf(tw, "Insight:\t%s\n", kind)
	if r.Message != "" {
		fmt.Fprintf(tw, "Message:\t%s\n", r.Message)
	}
	if r.Error != "" {
		fmt.Fprintf(tw, "Error:\t%s\n", r.Error)
	}

	writeSection(tw, "Out", r.Out)
	writeSection(tw, "In", r.In)

	if len(r.Changes) > 0 {
		fmt.Fprintln(tw, "Changes:")
		for _, c := range r.Changes {
			fmt.Fprintf(tw, "  %s\t%s\t%s -> %s\t%s\n", c.ChangeType, c.AssetType, c.From, c.To, c.Label())
		}
	}

	return tw.Flush()
}

func writeSection(w io.Writer, title string, labels []string) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(labels) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}

	for _, l := range labels {
		fmt.Fprintf(w, "  - %s\n", l)
	}
}
