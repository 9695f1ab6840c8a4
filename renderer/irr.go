// Package renderer turns fundflow reports into markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/davrieb/fundflow"
	md "github.com/nao1215/markdown"
)

// IRRMarkdown renders an IRR report to a markdown string.
func IRRMarkdown(r *fundflow.IRRReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Internal Rate of Return")

	if len(r.Flows) > 0 {
		doc.H2("Cash Flows")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				"Date",
				"Amount",
			},
		}
		for _, cf := range r.Flows {
			table.Rows = append(table.Rows, []string{
				cf.On.String(),
				cf.Amount.SignedString(),
			})
		}
		doc.Table(table)

		doc.PlainText(fmt.Sprintf("Net flows: %s", r.Total.SignedString()))
	}

	doc.H2("Result")
	if r.Err != nil {
		doc.PlainText(fmt.Sprintf("No rate found: %v.", r.Err))
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Annualized Rate"),
			md.Bold(r.Rate.Percent().SignedString()),
		},
		Rows: [][]string{
			{"Residual NPV", fmt.Sprintf("%.6f", r.Residual)},
		},
	})

	return doc.String()
}

// TurnoverMarkdown renders a turnover ratio line, or the reason there is
// none.
func TurnoverMarkdown(ratio fundflow.Percent, err error) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Turnover")
	if err != nil {
		doc.PlainText(fmt.Sprintf("Undefined: %v.", err))
	} else {
		doc.PlainText(fmt.Sprintf("Standard turnover ratio: %s", ratio))
	}
	return doc.String()
}
