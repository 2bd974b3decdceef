// Package pricing computes retail unit prices.
// The engine is a pure function of its inputs and the profile's constant
// tables: no I/O, no shared mutable state, identical output for identical
// inputs. All arithmetic runs on decimals; the final price is rounded to
// 2 places with banker's rounding (round half to even).
package pricing

import (
	"github.com/shopspring/decimal"

	"retail-price/core/profile"
	"retail-price/internal/errors"
)

// Request contains the five pricing inputs
type Request struct {
	// Quantity is the production run size, must be > 0
	Quantity int64 `json:"quantity"`

	// PrimaryFormat selects the physical/product variant
	PrimaryFormat string `json:"primary_format"`

	// SecondaryFormat selects the capacity/size variant
	SecondaryFormat string `json:"secondary_format"`

	// VATPercent is the value-added tax, non-negative
	VATPercent decimal.Decimal `json:"vat_percent"`

	// DiscountPercent is the trailing retail discount, 0 to 100
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// Breakdown records every intermediate stage of the pipeline
type Breakdown struct {
	QuantityFactor    decimal.Decimal `json:"quantity_factor"`
	PrimaryFactor     decimal.Decimal `json:"primary_factor"`
	SecondaryFactor   decimal.Decimal `json:"secondary_factor"`
	MaterialsDiscount decimal.Decimal `json:"materials_discount"`

	MaterialsCost    decimal.Decimal `json:"materials_cost"`
	LaborCost        decimal.Decimal `json:"labor_cost"`
	AmortizationCost decimal.Decimal `json:"amortization_cost"`
	BaseCostTotal    decimal.Decimal `json:"base_cost_total"`

	OverheadProduction decimal.Decimal `json:"overhead_production"`
	OverheadAdmin      decimal.Decimal `json:"overhead_admin"`
	CommercialCosts    decimal.Decimal `json:"commercial_costs"`
	OverheadTotal      decimal.Decimal `json:"overhead_total"`

	FullCost decimal.Decimal `json:"full_cost"`
	UnitCost decimal.Decimal `json:"unit_cost"`

	PublisherProfit decimal.Decimal `json:"publisher_profit"`
	WholesaleExVAT  decimal.Decimal `json:"wholesale_ex_vat"`
	WholesaleIncVAT decimal.Decimal `json:"wholesale_inc_vat"`

	RetailerMarkup decimal.Decimal `json:"retailer_markup"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
}

// Quote is the engine's output: the final rounded price, the stage
// breakdown, and a restatement of the inputs it was computed from.
type Quote struct {
	// Profile names the cost-model profile used
	Profile string `json:"profile"`

	// Price is the final retail unit price, rounded to 2 places
	Price decimal.Decimal `json:"price"`

	// Breakdown contains the intermediate pipeline stages
	Breakdown Breakdown `json:"breakdown"`

	// Inputs restates the request the quote answers
	Inputs Request `json:"inputs"`
}

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Compute runs the pricing pipeline for one request against a profile.
//
// Pipeline order matters, each stage compounds the previous total:
// scale base costs, sum, apply overheads, divide to unit cost, apply
// publisher margin, VAT, retailer markup, then the trailing discount.
//
// The engine guards the two conditions that would corrupt output
// silently: non-positive quantity and unknown format codes. Percentage
// range checks belong to the boundary (see ValidateRequest).
func Compute(req Request, p *profile.Profile) (*Quote, error) {
	if req.Quantity <= 0 {
		return nil, errors.InvalidQuantity(req.Quantity)
	}

	primaryFactor, ok := p.Primary.Lookup(req.PrimaryFormat)
	if !ok {
		return nil, errors.UnrecognizedFormat("primary_format", req.PrimaryFormat, p.Primary.Codes())
	}
	secondaryFactor, ok := p.Secondary.Lookup(req.SecondaryFormat)
	if !ok {
		return nil, errors.UnrecognizedFormat("secondary_format", req.SecondaryFormat, p.Secondary.Codes())
	}

	quantity := decimal.NewFromInt(req.Quantity)
	quantityFactor := quantity.Div(decimal.NewFromInt(p.BaseQuantity))
	materialsDiscount := p.MaterialsDiscount(req.Quantity)

	// Scaled cost components. The secondary factor folds into materials
	// multiplicatively; labor and amortization scale with volume only.
	materialsCost := p.Costs.MaterialsBase.
		Mul(quantityFactor).
		Mul(primaryFactor).
		Mul(secondaryFactor).
		Mul(materialsDiscount)
	laborCost := p.Costs.LaborBase.Mul(quantityFactor)
	amortizationCost := p.Costs.AmortizationBase.Mul(quantityFactor)

	baseCostTotal := materialsCost.Add(laborCost).Add(amortizationCost)

	// Overheads are percentages of the base cost total; fixed commercial
	// costs (if the profile has any) join the overhead total.
	overheadProduction := baseCostTotal.Mul(p.Costs.OverheadProductionPercent).Div(hundred)
	overheadAdmin := baseCostTotal.Mul(p.Costs.OverheadAdminPercent).Div(hundred)
	commercialCosts := p.Costs.CommercialTotal()
	overheadTotal := overheadProduction.Add(overheadAdmin).Add(commercialCosts)

	fullCost := baseCostTotal.Add(overheadTotal)
	unitCost := fullCost.Div(quantity)

	publisherProfit := unitCost.Mul(p.Costs.PublisherMarginPercent).Div(hundred)
	wholesaleExVAT := unitCost.Add(publisherProfit)
	wholesaleIncVAT := wholesaleExVAT.Mul(one.Add(req.VATPercent.Div(hundred)))

	retailerMarkup := wholesaleIncVAT.Mul(p.Costs.RetailerMarkupPercent).Div(hundred)
	retailPrice := wholesaleIncVAT.Add(retailerMarkup)

	finalPrice := retailPrice.Mul(one.Sub(req.DiscountPercent.Div(hundred)))

	return &Quote{
		Profile: p.Name,
		Price:   finalPrice.RoundBank(2),
		Breakdown: Breakdown{
			QuantityFactor:     quantityFactor,
			PrimaryFactor:      primaryFactor,
			SecondaryFactor:    secondaryFactor,
			MaterialsDiscount:  materialsDiscount,
			MaterialsCost:      materialsCost,
			LaborCost:          laborCost,
			AmortizationCost:   amortizationCost,
			BaseCostTotal:      baseCostTotal,
			OverheadProduction: overheadProduction,
			OverheadAdmin:      overheadAdmin,
			CommercialCosts:    commercialCosts,
			OverheadTotal:      overheadTotal,
			FullCost:           fullCost,
			UnitCost:           unitCost,
			PublisherProfit:    publisherProfit,
			WholesaleExVAT:     wholesaleExVAT,
			WholesaleIncVAT:    wholesaleIncVAT,
			RetailerMarkup:     retailerMarkup,
			RetailPrice:        retailPrice,
		},
		Inputs: req,
	}, nil
}
