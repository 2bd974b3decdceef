// Package output renders quotes for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"retail-price/core/pricing"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Options controls rendering
type Options struct {
	// ShowBreakdown includes the stage-by-stage pipeline breakdown
	ShowBreakdown bool
}

// Render writes a quote in the requested format
func Render(w io.Writer, quote *pricing.Quote, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, quote)
	case FormatCLI, "":
		return renderCLI(w, quote, opts)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func renderJSON(w io.Writer, quote *pricing.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(quote)
}

func renderCLI(w io.Writer, quote *pricing.Quote, opts Options) error {
	line := func(label, value string) {
		fmt.Fprintf(w, "│ %-40s %25s │\n", label, value)
	}

	fmt.Fprintln(w, "┌────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                        RETAIL PRICE QUOTE                          │")
	fmt.Fprintln(w, "├────────────────────────────────────────────────────────────────────┤")
	line("Profile", quote.Profile)
	line("Quantity", fmt.Sprintf("%d", quote.Inputs.Quantity))
	line("Primary format", quote.Inputs.PrimaryFormat)
	line("Secondary format", quote.Inputs.SecondaryFormat)
	line("VAT", quote.Inputs.VATPercent.String()+"%")
	line("Discount", quote.Inputs.DiscountPercent.String()+"%")

	if opts.ShowBreakdown {
		b := quote.Breakdown
		fmt.Fprintln(w, "├────────────────────────────────────────────────────────────────────┤")
		line("Materials cost", b.MaterialsCost.StringFixed(2))
		line("Labor cost", b.LaborCost.StringFixed(2))
		line("Amortization cost", b.AmortizationCost.StringFixed(2))
		line("Base cost total", b.BaseCostTotal.StringFixed(2))
		line("Overhead total", b.OverheadTotal.StringFixed(2))
		if !b.CommercialCosts.IsZero() {
			line("  incl. commercial costs", b.CommercialCosts.StringFixed(2))
		}
		line("Full cost", b.FullCost.StringFixed(2))
		line("Unit cost", b.UnitCost.StringFixed(2))
		line("Wholesale (ex VAT)", b.WholesaleExVAT.StringFixed(2))
		line("Wholesale (inc VAT)", b.WholesaleIncVAT.StringFixed(2))
		line("Retail price", b.RetailPrice.StringFixed(2))
	}

	fmt.Fprintln(w, "├────────────────────────────────────────────────────────────────────┤")
	line("RETAIL UNIT PRICE", quote.Price.StringFixed(2))
	fmt.Fprintln(w, "└────────────────────────────────────────────────────────────────────┘")
	return nil
}
