// Package cmd - quote command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"retail-price/core/output"
	"retail-price/core/pricing"
	"retail-price/core/profile"
	"retail-price/internal/config"
	"retail-price/internal/errors"
)

var (
	quoteProfile   string
	quoteQuantity  int64
	quotePrimary   string
	quoteSecondary string
	quoteVAT       string
	quoteDiscount  string
	quoteFormat    string
	profileDir     string
	showBreakdown  bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a retail unit price",
	Long: `Compute a retail unit price for one production run.

All five inputs are validated before the pipeline runs; VAT and discount
are parsed as exact decimals, so "20" and "20.0" price identically.

Examples:
  retail-price quote --quantity 100 --primary "iPhone 15" --secondary "128 Gb" --vat 20
  retail-price quote --quantity 1000 --primary "iPhone 15 Pro" --secondary "1 Tb" --vat 20 --discount 15 --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteProfile, "profile", "", "pricing profile (default from config)")
	quoteCmd.Flags().Int64VarP(&quoteQuantity, "quantity", "q", 0, "production run size")
	quoteCmd.Flags().StringVar(&quotePrimary, "primary", "", "primary format code")
	quoteCmd.Flags().StringVar(&quoteSecondary, "secondary", "", "secondary format code")
	quoteCmd.Flags().StringVar(&quoteVAT, "vat", "0", "VAT percentage")
	quoteCmd.Flags().StringVar(&quoteDiscount, "discount", "0", "discount percentage")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().StringVar(&profileDir, "profiles-dir", "", "directory of *.hcl profile files to load")
	quoteCmd.Flags().BoolVarP(&showBreakdown, "breakdown", "b", true, "show the cost breakdown")

	_ = quoteCmd.MarkFlagRequired("quantity")
	_ = quoteCmd.MarkFlagRequired("primary")
	_ = quoteCmd.MarkFlagRequired("secondary")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	dir := profileDir
	if dir == "" {
		dir = cfg.Pricing.ProfileDir
	}
	if dir != "" {
		if _, err := profile.NewLoader().LoadDir(dir, profile.Default()); err != nil {
			return err
		}
	}

	vat, err := decimal.NewFromString(quoteVAT)
	if err != nil {
		return errors.Parse("vat", err)
	}
	discount, err := decimal.NewFromString(quoteDiscount)
	if err != nil {
		return errors.Parse("discount", err)
	}

	name := quoteProfile
	if name == "" {
		name = cfg.Pricing.DefaultProfile
	}
	prof, ok := profile.Get(name)
	if !ok {
		return errors.UnknownProfile(name, profile.Names())
	}

	req := pricing.Request{
		Quantity:        quoteQuantity,
		PrimaryFormat:   quotePrimary,
		SecondaryFormat: quoteSecondary,
		VATPercent:      vat,
		DiscountPercent: discount,
	}

	if err := pricing.ValidateRequest(req); err != nil {
		return err
	}

	quote, err := pricing.Compute(req, prof)
	if err != nil {
		return err
	}

	format := output.Format(quoteFormat)
	if quoteFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}

	return output.Render(os.Stdout, quote, format, output.Options{
		ShowBreakdown: showBreakdown && cfg.Output.ShowBreakdown,
	})
}
