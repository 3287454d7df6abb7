// Package present renders filtered records to the terminal.
package present

import (
	"fmt"
	"io"
	"strings"

	"csvsift/internal/config"
	"csvsift/internal/filter"
	"csvsift/internal/records"
)

const dividerWidth = 17

// Presenter writes results to w in block or table view.
type Presenter struct {
	w      io.Writer
	view   string
	styles Styles
}

// New returns a presenter for the given view (config.ViewBlock or config.ViewTable).
func New(w io.Writer, view string, styles Styles) *Presenter {
	if view == "" {
		view = config.ViewBlock
	}
	return &Presenter{w: w, view: view, styles: styles}
}

// Show prints res. header sets the table column order; when nil the first
// record's keys are used.
func (p *Presenter) Show(res filter.Result, header []string) {
	if res.Skipped > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.styles.Warning.Render(
			fmt.Sprintf("Skipped %d row(s) with a non-numeric value.", res.Skipped)))
	}
	if res.Empty() {
		fmt.Fprintln(p.w, "\nNo results")
		return
	}
	if p.view == config.ViewTable {
		if header == nil {
			header = res.Records[0].Keys()
		}
		p.table(res.Description, res.Records, header)
		return
	}

	if res.Description != "" {
		fmt.Fprintf(p.w, "\n%s\n", p.styles.Title.Render(res.Description))
	}
	for _, rec := range res.Records {
		p.block(rec)
	}
}

func (p *Presenter) block(rec records.Record) {
	label := p.styles.Label.Render
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s %s\n", label("User ID:"), rec.Get(records.FieldID))
	fmt.Fprintf(&sb, "%s %s %s\n", label("Name:"), rec.Get(records.FieldFirstName), rec.Get(records.FieldLastName))
	fmt.Fprintf(&sb, "%s %s\n", label("Age:"), rec.Get(records.FieldAge))
	fmt.Fprintf(&sb, "%s %s\n", label("City:"), rec.Get(records.FieldCity))
	fmt.Fprintf(&sb, "%s %s\n", label("Phone Number:"), rec.Get(records.FieldPhoneNumber))
	sb.WriteString(p.styles.RenderDivider(dividerWidth))
	sb.WriteString("\n")
	io.WriteString(p.w, sb.String())
}

// table renders recs under title, one column per header field.
func (p *Presenter) table(title string, recs []records.Record, header []string) {
	t := NewTable(title, header)
	for _, rec := range recs {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = rec.Get(k)
		}
		t.AddRow(row...)
	}
	fmt.Fprint(p.w, "\n"+t.View(p.styles))
	fmt.Fprintf(p.w, "%s\n", p.styles.Muted.Render(fmt.Sprintf("%d row(s)", len(recs))))
}
