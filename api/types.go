// Package api - request and response envelopes
package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"retail-price/core/pricing"
	"retail-price/internal/errors"
)

// QuoteRequest is the POST /quote payload
type QuoteRequest struct {
	// Profile selects the cost-model profile; empty means the server default
	Profile string `json:"profile,omitempty"`

	// Quantity is the production run size
	Quantity int64 `json:"quantity"`

	// PrimaryFormat is the primary format code
	PrimaryFormat string `json:"primary_format"`

	// SecondaryFormat is the secondary format code
	SecondaryFormat string `json:"secondary_format"`

	// VATPercent is the VAT percentage
	VATPercent decimal.Decimal `json:"vat_percent"`

	// DiscountPercent is the retail discount percentage
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// quoteRequestWire mirrors QuoteRequest with the percentage fields left
// raw, so a value of the wrong type can be reported against its field.
type quoteRequestWire struct {
	Profile         string          `json:"profile"`
	Quantity        int64           `json:"quantity"`
	PrimaryFormat   string          `json:"primary_format"`
	SecondaryFormat string          `json:"secondary_format"`
	VATPercent      json.RawMessage `json:"vat_percent"`
	DiscountPercent json.RawMessage `json:"discount_percent"`
}

// UnmarshalJSON decodes the payload, attributing numeric-parse failures
// to the offending field.
func (q *QuoteRequest) UnmarshalJSON(data []byte) error {
	var wire quoteRequestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
			return errors.Parse(typeErr.Field, err)
		}
		return err
	}

	vat, err := decodePercent("vat_percent", wire.VATPercent)
	if err != nil {
		return err
	}
	discount, err := decodePercent("discount_percent", wire.DiscountPercent)
	if err != nil {
		return err
	}

	q.Profile = wire.Profile
	q.Quantity = wire.Quantity
	q.PrimaryFormat = wire.PrimaryFormat
	q.SecondaryFormat = wire.SecondaryFormat
	q.VATPercent = vat
	q.DiscountPercent = discount
	return nil
}

// decodePercent parses an optional percentage field. Absent and null
// values default to zero.
func decodePercent(field string, raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Decimal{}, nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Decimal{}, errors.Parse(field, err)
	}
	return d, nil
}

// QuoteResponse is the POST /quote response envelope
type QuoteResponse struct {
	// RequestID identifies this request
	RequestID string `json:"request_id"`

	// Timestamp is when the quote was computed
	Timestamp time.Time `json:"timestamp"`

	// Status is "success" or "error"
	Status string `json:"status"`

	// Quote is the engine output (absent on error)
	Quote *pricing.Quote `json:"quote,omitempty"`

	// Error describes a failure (absent on success)
	Error *ErrorDetail `json:"error,omitempty"`

	// Metadata contains execution context
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ErrorDetail is a user-facing error description
type ErrorDetail struct {
	// Code is the machine-readable error code
	Code string `json:"code"`

	// Field names the offending input field, when known
	Field string `json:"field,omitempty"`

	// Message is the human-readable message
	Message string `json:"message"`
}

// ResponseMetadata contains execution context
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request
	InputHash string `json:"input_hash"`

	// EngineVersion is the server version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the processing time in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// ProfileSummary describes a registered profile for GET /profiles
type ProfileSummary struct {
	// Name identifies the profile
	Name string `json:"name"`

	// Description is the profile summary
	Description string `json:"description,omitempty"`

	// PrimaryLabel names the primary selector
	PrimaryLabel string `json:"primary_label"`

	// SecondaryLabel names the secondary selector
	SecondaryLabel string `json:"secondary_label"`

	// PrimaryCodes lists accepted primary format codes
	PrimaryCodes []string `json:"primary_codes"`

	// SecondaryCodes lists accepted secondary format codes
	SecondaryCodes []string `json:"secondary_codes"`
}
