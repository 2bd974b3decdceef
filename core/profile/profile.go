// Package profile defines cost-model profiles.
// A profile is pure configuration data: the constant tables and percentages
// that drive the pricing pipeline. Swapping a profile switches product lines
// without touching pipeline logic.
package profile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Coefficient maps an enumerated format code to its multiplier
type Coefficient struct {
	// Code is the enumerated format code (e.g. "iPhone 15 Pro", "256 Gb")
	Code string `json:"code"`

	// Factor is the multiplier applied for this code
	Factor decimal.Decimal `json:"factor"`
}

// CoefficientTable is a closed, ordered set of format codes.
// Order is preserved for listings and error messages.
type CoefficientTable []Coefficient

// Lookup returns the factor for a code
func (t CoefficientTable) Lookup(code string) (decimal.Decimal, bool) {
	for _, c := range t {
		if c.Code == code {
			return c.Factor, true
		}
	}
	return decimal.Decimal{}, false
}

// Codes returns the accepted codes in table order
func (t CoefficientTable) Codes() []string {
	codes := make([]string, len(t))
	for i, c := range t {
		codes[i] = c.Code
	}
	return codes
}

// DiscountTier is one volume band of the materials discount.
// A tier matches quantities in the half-open interval
// [MinQuantity, next tier's MinQuantity).
type DiscountTier struct {
	// MinQuantity is the inclusive lower bound of the band
	MinQuantity int64 `json:"min_quantity"`

	// Rate is the multiplier applied to the materials cost (0.9 = 10% off)
	Rate decimal.Decimal `json:"rate"`
}

// FixedCost is a one-off commercial cost (design, editing, logistics)
type FixedCost struct {
	// Label identifies the cost line
	Label string `json:"label"`

	// Amount is the fixed amount added to overhead
	Amount decimal.Decimal `json:"amount"`
}

// CostModel contains the base reference values of a profile
type CostModel struct {
	// MaterialsBase is the materials cost at the base quantity
	MaterialsBase decimal.Decimal `json:"materials_base"`

	// LaborBase is the labor cost at the base quantity
	LaborBase decimal.Decimal `json:"labor_base"`

	// AmortizationBase is the equipment amortization at the base quantity
	AmortizationBase decimal.Decimal `json:"amortization_base"`

	// OverheadProductionPercent is the production overhead, % of base cost
	OverheadProductionPercent decimal.Decimal `json:"overhead_production_percent"`

	// OverheadAdminPercent is the administrative overhead, % of base cost
	OverheadAdminPercent decimal.Decimal `json:"overhead_admin_percent"`

	// PublisherMarginPercent is the margin applied to unit cost
	PublisherMarginPercent decimal.Decimal `json:"publisher_margin_percent"`

	// RetailerMarkupPercent is the markup applied after VAT
	RetailerMarkupPercent decimal.Decimal `json:"retailer_markup_percent"`

	// Commercial lists optional fixed one-off costs added to overhead
	Commercial []FixedCost `json:"commercial,omitempty"`
}

// CommercialTotal sums the fixed commercial costs
func (m CostModel) CommercialTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range m.Commercial {
		total = total.Add(c.Amount)
	}
	return total
}

// Profile is a complete cost-model configuration.
// Profiles are read-only after registration; the secondary coefficient is
// always applied multiplicatively to the materials component.
type Profile struct {
	// Name identifies the profile
	Name string `json:"name"`

	// Description is a human-readable summary
	Description string `json:"description,omitempty"`

	// PrimaryLabel names the primary selector (e.g. "model", "format")
	PrimaryLabel string `json:"primary_label"`

	// SecondaryLabel names the secondary selector (e.g. "storage", "pages")
	SecondaryLabel string `json:"secondary_label"`

	// BaseQuantity is the reference production run all scaling is relative to
	BaseQuantity int64 `json:"base_quantity"`

	// Costs contains the base cost constants and percentages
	Costs CostModel `json:"costs"`

	// Primary is the coefficient table for the primary format selector
	Primary CoefficientTable `json:"primary"`

	// Secondary is the coefficient table for the secondary format selector
	Secondary CoefficientTable `json:"secondary"`

	// MaterialsTiers are the volume discount bands, sorted by MinQuantity
	// ascending. Selection is half-open: a quantity matches the highest
	// tier whose MinQuantity it reaches.
	MaterialsTiers []DiscountTier `json:"materials_tiers,omitempty"`
}

// MaterialsDiscount returns the tiered materials discount for a quantity.
// Quantities below the lowest band get no discount (rate 1).
func (p *Profile) MaterialsDiscount(quantity int64) decimal.Decimal {
	rate := decimal.NewFromInt(1)
	for _, tier := range p.MaterialsTiers {
		if quantity >= tier.MinQuantity {
			rate = tier.Rate
		} else {
			break
		}
	}
	return rate
}

// Validate checks profile integrity
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.BaseQuantity <= 0 {
		return fmt.Errorf("base_quantity must be greater than 0, got %d", p.BaseQuantity)
	}
	if len(p.Primary) == 0 {
		return fmt.Errorf("primary coefficient table is empty")
	}
	if len(p.Secondary) == 0 {
		return fmt.Errorf("secondary coefficient table is empty")
	}
	if err := validateTable("primary", p.Primary); err != nil {
		return err
	}
	if err := validateTable("secondary", p.Secondary); err != nil {
		return err
	}
	if err := validatePercent("overhead_production_percent", p.Costs.OverheadProductionPercent); err != nil {
		return err
	}
	if err := validatePercent("overhead_admin_percent", p.Costs.OverheadAdminPercent); err != nil {
		return err
	}
	if err := validatePercent("publisher_margin_percent", p.Costs.PublisherMarginPercent); err != nil {
		return err
	}
	if err := validatePercent("retailer_markup_percent", p.Costs.RetailerMarkupPercent); err != nil {
		return err
	}
	return validateTiers(p.MaterialsTiers)
}

func validateTable(name string, table CoefficientTable) error {
	seen := make(map[string]bool, len(table))
	for _, c := range table {
		if c.Code == "" {
			return fmt.Errorf("%s table has an empty code", name)
		}
		if seen[c.Code] {
			return fmt.Errorf("%s table has duplicate code %q", name, c.Code)
		}
		seen[c.Code] = true
		if !c.Factor.IsPositive() {
			return fmt.Errorf("%s factor for %q must be positive, got %s", name, c.Code, c.Factor)
		}
	}
	return nil
}

func validatePercent(name string, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%s cannot be negative, got %s", name, value)
	}
	return nil
}

func validateTiers(tiers []DiscountTier) error {
	var prev int64
	for i, tier := range tiers {
		if tier.MinQuantity <= 0 {
			return fmt.Errorf("tier %d: min_quantity must be greater than 0, got %d", i, tier.MinQuantity)
		}
		if i > 0 && tier.MinQuantity <= prev {
			return fmt.Errorf("tier %d: min_quantity %d does not ascend past %d, bands would overlap", i, tier.MinQuantity, prev)
		}
		if !tier.Rate.IsPositive() || tier.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("tier %d: rate must be in (0, 1], got %s", i, tier.Rate)
		}
		prev = tier.MinQuantity
	}
	return nil
}
