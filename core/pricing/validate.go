// Package pricing - boundary validation
package pricing

import (
	"github.com/shopspring/decimal"

	"retail-price/internal/errors"
)

// ValidateRequest performs the full boundary-side domain checks before a
// request reaches the engine: positive quantity, non-negative VAT and a
// discount between 0 and 100. The HTTP and CLI boundaries both call this;
// the engine itself re-checks only quantity and format codes.
func ValidateRequest(req Request) error {
	if req.Quantity <= 0 {
		return errors.InvalidQuantity(req.Quantity)
	}
	if req.VATPercent.IsNegative() {
		return errors.InvalidPercentage("vat_percent", "VAT percentage cannot be negative")
	}
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return errors.InvalidPercentage("discount_percent", "discount percentage must be between 0 and 100")
	}
	return nil
}
