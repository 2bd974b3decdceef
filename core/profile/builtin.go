// Package profile - built-in profiles
// These are the shipped product-line variants. Values are configuration
// data, not algorithm: edit or replace them with HCL profile files.
package profile

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Smartphone is the device-tier pricing profile: price scales by phone
// model and storage capacity.
func Smartphone() *Profile {
	return &Profile{
		Name:           "smartphone",
		Description:    "Retail smartphone pricing by model and storage tier",
		PrimaryLabel:   "model",
		SecondaryLabel: "storage",
		BaseQuantity:   100,
		Costs: CostModel{
			MaterialsBase:             decimal.NewFromInt(2100000),
			LaborBase:                 decimal.NewFromInt(1200000),
			AmortizationBase:          decimal.NewFromInt(300000),
			OverheadProductionPercent: decimal.NewFromInt(20),
			OverheadAdminPercent:      decimal.NewFromInt(15),
			PublisherMarginPercent:    decimal.NewFromInt(20),
			RetailerMarkupPercent:     decimal.NewFromInt(1),
		},
		Primary: CoefficientTable{
			{Code: "iPhone 15", Factor: dec("1.0")},
			{Code: "iPhone 15 Plus", Factor: dec("1.08")},
			{Code: "iPhone 15 Pro", Factor: dec("1.25")},
			{Code: "iPhone 15 Pro Max", Factor: dec("1.4")},
		},
		Secondary: CoefficientTable{
			{Code: "128 Gb", Factor: dec("1.0")},
			{Code: "256 Gb", Factor: dec("1.12")},
			{Code: "512 Gb", Factor: dec("1.28")},
			{Code: "1 Tb", Factor: dec("1.45")},
		},
		MaterialsTiers: []DiscountTier{
			{MinQuantity: 100, Rate: dec("0.9")},
			{MinQuantity: 500, Rate: dec("0.85")},
			{MinQuantity: 1000, Rate: dec("0.8")},
		},
	}
}

// PrintRun is the book print-run pricing profile: price scales by page
// format and page count, with fixed one-off commercial costs.
func PrintRun() *Profile {
	return &Profile{
		Name:           "print-run",
		Description:    "Retail book pricing by format and page count",
		PrimaryLabel:   "format",
		SecondaryLabel: "pages",
		BaseQuantity:   100,
		Costs: CostModel{
			MaterialsBase:             decimal.NewFromInt(2100000),
			LaborBase:                 decimal.NewFromInt(1200000),
			AmortizationBase:          decimal.NewFromInt(300000),
			OverheadProductionPercent: decimal.NewFromInt(20),
			OverheadAdminPercent:      decimal.NewFromInt(15),
			PublisherMarginPercent:    decimal.NewFromInt(20),
			RetailerMarkupPercent:     decimal.NewFromInt(1),
			Commercial: []FixedCost{
				{Label: "design", Amount: decimal.NewFromInt(180000)},
				{Label: "editing", Amount: decimal.NewFromInt(240000)},
				{Label: "registration", Amount: decimal.NewFromInt(35000)},
				{Label: "marketing", Amount: decimal.NewFromInt(150000)},
				{Label: "logistics", Amount: decimal.NewFromInt(95000)},
			},
		},
		Primary: CoefficientTable{
			{Code: "A4", Factor: dec("1.3")},
			{Code: "A5", Factor: dec("1.0")},
			{Code: "A6", Factor: dec("0.8")},
		},
		Secondary: CoefficientTable{
			{Code: "96 pages", Factor: dec("0.55")},
			{Code: "200 pages", Factor: dec("1.0")},
			{Code: "320 pages", Factor: dec("1.55")},
			{Code: "480 pages", Factor: dec("2.3")},
		},
		MaterialsTiers: []DiscountTier{
			{MinQuantity: 100, Rate: dec("0.9")},
			{MinQuantity: 500, Rate: dec("0.85")},
			{MinQuantity: 1000, Rate: dec("0.8")},
		},
	}
}

func init() {
	MustRegister(Smartphone())
	MustRegister(PrintRun())
}
