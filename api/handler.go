// Package api - quote handler
// The handler wraps the engine. It validates raw input, resolves the
// profile, and translates engine failures into user-facing errors; it
// contains no pricing logic of its own.
package api

import (
	"net/http"

	"retail-price/core/pricing"
	"retail-price/core/profile"
	"retail-price/internal/errors"
)

// Handler executes quote requests against a profile registry
type Handler struct {
	registry       *profile.Registry
	defaultProfile string
}

// NewHandler creates a new handler
func NewHandler(registry *profile.Registry, defaultProfile string) *Handler {
	return &Handler{
		registry:       registry,
		defaultProfile: defaultProfile,
	}
}

// execute resolves the profile, validates and prices one request
func (h *Handler) execute(req *QuoteRequest) (*pricing.Quote, error) {
	name := req.Profile
	if name == "" {
		name = h.defaultProfile
	}

	prof, ok := h.registry.Get(name)
	if !ok {
		return nil, errors.UnknownProfile(name, h.registry.Names())
	}

	engineReq := pricing.Request{
		Quantity:        req.Quantity,
		PrimaryFormat:   req.PrimaryFormat,
		SecondaryFormat: req.SecondaryFormat,
		VATPercent:      req.VATPercent,
		DiscountPercent: req.DiscountPercent,
	}

	if err := pricing.ValidateRequest(engineReq); err != nil {
		return nil, err
	}

	return pricing.Compute(engineReq, prof)
}

// profileSummaries lists the registered profiles with their accepted codes
func (h *Handler) profileSummaries() []ProfileSummary {
	names := h.registry.Names()
	summaries := make([]ProfileSummary, 0, len(names))
	for _, name := range names {
		p, ok := h.registry.Get(name)
		if !ok {
			continue
		}
		summaries = append(summaries, summarize(p))
	}
	return summaries
}

func summarize(p *profile.Profile) ProfileSummary {
	return ProfileSummary{
		Name:           p.Name,
		Description:    p.Description,
		PrimaryLabel:   p.PrimaryLabel,
		SecondaryLabel: p.SecondaryLabel,
		PrimaryCodes:   p.Primary.Codes(),
		SecondaryCodes: p.Secondary.Codes(),
	}
}

// errorDetail converts a domain error into the response envelope form
func errorDetail(err error) *ErrorDetail {
	if e, ok := err.(*errors.Error); ok {
		return &ErrorDetail{
			Code:    string(e.Type),
			Field:   e.Field,
			Message: e.Message,
		}
	}
	return &ErrorDetail{
		Code:    string(errors.TypeInternal),
		Message: err.Error(),
	}
}

// statusFor maps a domain error to an HTTP status. Every engine failure is
// a deterministic input defect, so almost everything is a 400.
func statusFor(err error) int {
	if e, ok := err.(*errors.Error); ok {
		switch e.Type {
		case errors.TypeProfile:
			return http.StatusNotFound
		case errors.TypeInvalidQuantity,
			errors.TypeUnrecognizedFormat,
			errors.TypeInvalidPercentage,
			errors.TypeParse:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
