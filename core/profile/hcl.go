// Package profile - HCL profile files
// Profiles are versionable constants files. A *.hcl file holds one or more
// profile blocks:
//
//	profile "smartphone" {
//	  base_quantity = 100
//	  costs {
//	    materials_base = 2100000
//	    ...
//	  }
//	  primary "iPhone 15" { factor = 1.0 }
//	  secondary "128 Gb"  { factor = 1.0 }
//	  tier { min_quantity = 100  rate = 0.9 }
//	}
package profile

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

// Loader parses HCL profile files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new profile loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "profile", LabelNames: []string{"name"}},
	},
}

var profileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "primary_label"},
		{Name: "secondary_label"},
		{Name: "base_quantity", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "costs"},
		{Type: "primary", LabelNames: []string{"code"}},
		{Type: "secondary", LabelNames: []string{"code"}},
		{Type: "tier"},
	},
}

var costsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "materials_base", Required: true},
		{Name: "labor_base", Required: true},
		{Name: "amortization_base", Required: true},
		{Name: "overhead_production_percent", Required: true},
		{Name: "overhead_admin_percent", Required: true},
		{Name: "publisher_margin_percent", Required: true},
		{Name: "retailer_markup_percent", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "commercial", LabelNames: []string{"label"}},
	},
}

var factorSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "factor", Required: true},
	},
}

var amountSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "amount", Required: true},
	},
}

var tierSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "min_quantity", Required: true},
		{Name: "rate", Required: true},
	},
}

// LoadFile parses the profiles defined in one file
func (l *Loader) LoadFile(path string) ([]*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return l.LoadBytes(src, path)
}

// LoadBytes parses profiles from raw HCL source
func (l *Loader) LoadBytes(src []byte, filename string) ([]*Profile, error) {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := hclFile.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var profiles []*Profile
	for _, block := range content.Blocks {
		p, err := decodeProfile(block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: profile %q: %w", filename, p.Name, err)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// LoadDir parses every *.hcl file in dir and registers the profiles found.
// It returns the number of profiles registered.
func (l *Loader) LoadDir(dir string, reg *Registry) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.hcl"))
	if err != nil {
		return 0, err
	}

	count := 0
	for _, path := range matches {
		profiles, err := l.LoadFile(path)
		if err != nil {
			return count, err
		}
		for _, p := range profiles {
			if err := reg.Register(p); err != nil {
				return count, fmt.Errorf("%s: %w", path, err)
			}
			count++
		}
	}

	return count, nil
}

func decodeProfile(block *hcl.Block) (*Profile, error) {
	p := &Profile{
		Name:           block.Labels[0],
		PrimaryLabel:   "primary_format",
		SecondaryLabel: "secondary_format",
	}

	content, diags := block.Body.Content(profileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	if attr, ok := content.Attributes["description"]; ok {
		s, err := stringValue(attr)
		if err != nil {
			return nil, err
		}
		p.Description = s
	}
	if attr, ok := content.Attributes["primary_label"]; ok {
		s, err := stringValue(attr)
		if err != nil {
			return nil, err
		}
		p.PrimaryLabel = s
	}
	if attr, ok := content.Attributes["secondary_label"]; ok {
		s, err := stringValue(attr)
		if err != nil {
			return nil, err
		}
		p.SecondaryLabel = s
	}

	qty, err := intValue(content.Attributes["base_quantity"])
	if err != nil {
		return nil, err
	}
	p.BaseQuantity = qty

	sawCosts := false
	for _, inner := range content.Blocks {
		switch inner.Type {
		case "costs":
			costs, err := decodeCosts(inner)
			if err != nil {
				return nil, err
			}
			p.Costs = *costs
			sawCosts = true
		case "primary":
			c, err := decodeCoefficient(inner)
			if err != nil {
				return nil, err
			}
			p.Primary = append(p.Primary, c)
		case "secondary":
			c, err := decodeCoefficient(inner)
			if err != nil {
				return nil, err
			}
			p.Secondary = append(p.Secondary, c)
		case "tier":
			tier, err := decodeTier(inner)
			if err != nil {
				return nil, err
			}
			p.MaterialsTiers = append(p.MaterialsTiers, tier)
		}
	}

	if !sawCosts {
		return nil, fmt.Errorf("profile %q: missing costs block", p.Name)
	}

	return p, nil
}

func decodeCosts(block *hcl.Block) (*CostModel, error) {
	content, diags := block.Body.Content(costsSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	costs := &CostModel{}
	fields := map[string]*decimal.Decimal{
		"materials_base":              &costs.MaterialsBase,
		"labor_base":                  &costs.LaborBase,
		"amortization_base":           &costs.AmortizationBase,
		"overhead_production_percent": &costs.OverheadProductionPercent,
		"overhead_admin_percent":      &costs.OverheadAdminPercent,
		"publisher_margin_percent":    &costs.PublisherMarginPercent,
		"retailer_markup_percent":     &costs.RetailerMarkupPercent,
	}
	for name, dst := range fields {
		d, err := decimalValue(content.Attributes[name])
		if err != nil {
			return nil, err
		}
		*dst = d
	}

	for _, inner := range content.Blocks {
		commercialContent, diags := inner.Body.Content(amountSchema)
		if diags.HasErrors() {
			return nil, diags
		}
		amount, err := decimalValue(commercialContent.Attributes["amount"])
		if err != nil {
			return nil, err
		}
		costs.Commercial = append(costs.Commercial, FixedCost{
			Label:  inner.Labels[0],
			Amount: amount,
		})
	}

	return costs, nil
}

func decodeCoefficient(block *hcl.Block) (Coefficient, error) {
	content, diags := block.Body.Content(factorSchema)
	if diags.HasErrors() {
		return Coefficient{}, diags
	}

	factor, err := decimalValue(content.Attributes["factor"])
	if err != nil {
		return Coefficient{}, err
	}

	return Coefficient{Code: block.Labels[0], Factor: factor}, nil
}

func decodeTier(block *hcl.Block) (DiscountTier, error) {
	content, diags := block.Body.Content(tierSchema)
	if diags.HasErrors() {
		return DiscountTier{}, diags
	}

	minQty, err := intValue(content.Attributes["min_quantity"])
	if err != nil {
		return DiscountTier{}, err
	}
	rate, err := decimalValue(content.Attributes["rate"])
	if err != nil {
		return DiscountTier{}, err
	}

	return DiscountTier{MinQuantity: minQty, Rate: rate}, nil
}

func stringValue(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.Type() != cty.String {
		return "", attrTypeError(attr, "a string", val)
	}
	return val.AsString(), nil
}

// decimalValue converts an HCL number to a decimal through its exact
// textual form, so constants like 1.08 survive without float drift.
func decimalValue(attr *hcl.Attribute) (decimal.Decimal, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Decimal{}, diags
	}
	if val.Type() != cty.Number {
		return decimal.Decimal{}, attrTypeError(attr, "a number", val)
	}
	return decimal.NewFromString(val.AsBigFloat().Text('f', -1))
}

func intValue(attr *hcl.Attribute) (int64, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.Type() != cty.Number {
		return 0, attrTypeError(attr, "a whole number", val)
	}
	i, acc := val.AsBigFloat().Int64()
	if acc != big.Exact {
		return 0, attrTypeError(attr, "a whole number", val)
	}
	return i, nil
}

func attrTypeError(attr *hcl.Attribute, want string, got cty.Value) error {
	return fmt.Errorf("%s: %s must be %s, got %s",
		attr.Range.String(), attr.Name, want, got.Type().FriendlyName())
}

func diagError(filename string, diags hcl.Diagnostics) error {
	var messages []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		messages = append(messages, fmt.Sprintf("%s:%d: %s", filename, line, diag.Summary))
	}
	return fmt.Errorf("invalid profile file: %s", strings.Join(messages, "; "))
}
