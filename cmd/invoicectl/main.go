// Command invoicectl computes totals and exports invoices described in YAML
// files, without running the server.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/mmynk/invoicemaker/internal/calculator"
	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/i18n"
	"github.com/mmynk/invoicemaker/internal/models"
	"github.com/mmynk/invoicemaker/internal/preview"
	"github.com/mmynk/invoicemaker/pkg/logging"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("invoicectl failed", "error", err)
		os.Exit(1)
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "invoice YAML file",
		Required: true,
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "invoicectl",
		Usage: "compute and export invoices from YAML files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logging.Setup(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "totals",
				Usage:  "print line amounts and totals",
				Flags:  []cli.Flag{fileFlag()},
				Action: totals,
			},
			{
				Name:  "export",
				Usage: "render the invoice and write a PDF or SVG",
				Flags: []cli.Flag{
					fileFlag(),
					&cli.StringFlag{Name: "format", Value: string(export.FormatPDF), Usage: "pdf or svg"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output path (default: invoice.<ext>)"},
					&cli.Float64Flag{Name: "scale", Value: export.CaptureScale, Usage: "capture scale factor for pdf"},
				},
				Action: exportInvoice,
			},
		},
	}
}

func totals(c *cli.Context) error {
	inv, err := loadInvoice(c.String("file"), time.Now())
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return writeTotalsJSON(c, inv)
	}
	lang, cur := inv.LanguageCode(), inv.CurrencyCode()
	labels := i18n.LabelsFor(lang)
	money := func(v float64) string { return i18n.FormatAmount(v, cur, lang) }

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, item := range inv.LineItems {
		fmt.Fprintf(w, "%s\t%g\t%s\t%s\t\n", item.Description, item.Quantity,
			money(item.Rate), money(calculator.ComputeLineAmount(item)))
	}
	t := calculator.ComputeTotals(inv)
	fmt.Fprintf(w, "%s\t\t\t%s\t\n", labels.Get(i18n.KeySubtotal), money(t.Subtotal))
	fmt.Fprintf(w, "%s (%g%%)\t\t\t%s\t\n", labels.Get(i18n.KeyTax), inv.TaxRate, money(t.TaxAmount))
	fmt.Fprintf(w, "%s\t\t\t-%s\t\n", labels.Get(i18n.KeyDiscount), money(inv.Discount))
	fmt.Fprintf(w, "%s\t\t\t%s\t\n", labels.Get(i18n.KeyTotal), money(t.Total))
	return w.Flush()
}

type totalsJSON struct {
	Currency    string    `json:"currency"`
	LineAmounts []float64 `json:"line_amounts"`
	Subtotal    float64   `json:"subtotal"`
	TaxRate     float64   `json:"tax_rate"`
	TaxAmount   float64   `json:"tax_amount"`
	Discount    float64   `json:"discount"`
	Total       float64   `json:"total"`
}

func writeTotalsJSON(c *cli.Context, inv models.Invoice) error {
	t := calculator.ComputeTotals(inv)
	out := totalsJSON{
		Currency:    inv.CurrencyCode(),
		LineAmounts: make([]float64, len(inv.LineItems)),
		Subtotal:    t.Subtotal,
		TaxRate:     inv.TaxRate,
		TaxAmount:   t.TaxAmount,
		Discount:    inv.Discount,
		Total:       t.Total,
	}
	for i, item := range inv.LineItems {
		out.LineAmounts[i] = calculator.ComputeLineAmount(item)
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportInvoice(c *cli.Context) error {
	format, err := export.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}
	inv, err := loadInvoice(c.String("file"), time.Now())
	if err != nil {
		return err
	}
	surface, err := preview.Render(inv)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	loc := export.LocatorFunc(func(id string) (export.Surface, bool) {
		return surface, id == preview.TargetID
	})

	out := c.String("output")
	name := filepath.Base(out)
	if out == "" {
		name = export.DefaultFilename
	}

	p := export.NewPipeline(export.WithScale(c.Float64("scale")))
	a, err := p.Export(c.Context, loc, format, preview.TargetID, name)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("nothing to export")
	}

	path := a.Filename
	if out != "" {
		path = filepath.Join(filepath.Dir(out), a.Filename)
	}
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Info("Invoice exported", "path", path, "format", format, "bytes", len(a.Data))
	fmt.Fprintln(c.App.Writer, path)
	return nil
}
