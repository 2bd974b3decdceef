// Package api - HTTP boundary tests
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"retail-price/core/profile"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := profile.NewRegistry()
	if err := reg.Register(profile.Smartphone()); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(profile.PrintRun()); err != nil {
		t.Fatal(err)
	}
	return NewServer("test", reg, "smartphone")
}

func postQuote(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, *QuoteResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return rec, &resp
}

func TestQuoteEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec, resp := postQuote(t, s, `{
		"quantity": 100,
		"primary_format": "iPhone 15",
		"secondary_format": "128 Gb",
		"vat_percent": 20,
		"discount_percent": 0
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp.Status != "success" || resp.Quote == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got := resp.Quote.Price.StringFixed(2); got != "66560.62" {
		t.Errorf("expected price 66560.62, got %s", got)
	}
	if resp.Quote.Profile != "smartphone" {
		t.Errorf("expected default profile smartphone, got %s", resp.Quote.Profile)
	}
	if resp.Metadata == nil || resp.Metadata.InputHash == "" {
		t.Error("metadata input hash missing")
	}
}

func TestQuoteEndpointExplicitProfile(t *testing.T) {
	s := newTestServer(t)

	rec, resp := postQuote(t, s, `{
		"profile": "print-run",
		"quantity": 500,
		"primary_format": "A5",
		"secondary_format": "200 pages",
		"vat_percent": 20,
		"discount_percent": 10
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp.Quote.Profile != "print-run" {
		t.Errorf("expected profile print-run, got %s", resp.Quote.Profile)
	}
	if !resp.Quote.Price.IsPositive() {
		t.Errorf("expected a positive price, got %s", resp.Quote.Price)
	}
}

func TestQuoteEndpointErrors(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name   string
		body   string
		status int
		code   string
		field  string
	}{
		{
			name:   "unknown format",
			body:   `{"quantity": 100, "primary_format": "iPhone 14", "secondary_format": "128 Gb", "vat_percent": 20}`,
			status: http.StatusBadRequest,
			code:   "UNRECOGNIZED_FORMAT",
			field:  "primary_format",
		},
		{
			name:   "zero quantity",
			body:   `{"quantity": 0, "primary_format": "iPhone 15", "secondary_format": "128 Gb", "vat_percent": 20}`,
			status: http.StatusBadRequest,
			code:   "INVALID_QUANTITY",
			field:  "quantity",
		},
		{
			name:   "negative vat",
			body:   `{"quantity": 100, "primary_format": "iPhone 15", "secondary_format": "128 Gb", "vat_percent": -1}`,
			status: http.StatusBadRequest,
			code:   "INVALID_PERCENTAGE",
			field:  "vat_percent",
		},
		{
			name:   "discount above 100",
			body:   `{"quantity": 100, "primary_format": "iPhone 15", "secondary_format": "128 Gb", "vat_percent": 20, "discount_percent": 150}`,
			status: http.StatusBadRequest,
			code:   "INVALID_PERCENTAGE",
			field:  "discount_percent",
		},
		{
			name:   "unknown profile",
			body:   `{"profile": "laptop", "quantity": 100, "primary_format": "iPhone 15", "secondary_format": "128 Gb", "vat_percent": 20}`,
			status: http.StatusNotFound,
			code:   "PROFILE_ERROR",
			field:  "profile",
		},
		{
			name:   "malformed json",
			body:   `{"quantity": `,
			status: http.StatusBadRequest,
			code:   "INVALID_JSON",
		},
		{
			name:   "non-numeric vat",
			body:   `{"quantity": 100, "primary_format": "iPhone 15", "secondary_format": "128 Gb", "vat_percent": "lots"}`,
			status: http.StatusBadRequest,
			code:   "PARSE_ERROR",
			field:  "vat_percent",
		},
		{
			name:   "non-numeric discount",
			body:   `{"quantity": 100, "primary_format": "iPhone 15", "secondary_format": "128 Gb", "vat_percent": 20, "discount_percent": true}`,
			status: http.StatusBadRequest,
			code:   "PARSE_ERROR",
			field:  "discount_percent",
		},
		{
			name:   "non-numeric quantity",
			body:   `{"quantity": "many", "primary_format": "iPhone 15", "secondary_format": "128 Gb", "vat_percent": 20}`,
			status: http.StatusBadRequest,
			code:   "PARSE_ERROR",
			field:  "quantity",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := postQuote(t, s, tc.body)

			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			if resp.Status != "error" || resp.Error == nil {
				t.Fatalf("expected error envelope, got %+v", resp)
			}
			if resp.Error.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, resp.Error.Code)
			}
			if tc.field != "" && resp.Error.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, resp.Error.Field)
			}
			if resp.Quote != nil {
				t.Error("error response carries a quote")
			}
		})
	}
}

func TestQuoteErrorEnumeratesAcceptedCodes(t *testing.T) {
	s := newTestServer(t)

	_, resp := postQuote(t, s, `{"quantity": 100, "primary_format": "Galaxy S24", "secondary_format": "128 Gb", "vat_percent": 20}`)

	if resp.Error == nil {
		t.Fatal("expected error response")
	}
	if !strings.Contains(resp.Error.Message, "iPhone 15 Pro Max") {
		t.Errorf("error message does not enumerate accepted codes: %s", resp.Error.Message)
	}
}

func TestListProfiles(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Profiles []ProfileSummary `json:"profiles"`
		Count    int              `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 2 {
		t.Fatalf("expected 2 profiles, got %d", resp.Count)
	}
	if resp.Profiles[1].Name != "smartphone" || len(resp.Profiles[1].PrimaryCodes) != 4 {
		t.Errorf("unexpected profile listing: %+v", resp.Profiles)
	}
}

func TestGetProfile(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/profiles/smartphone", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary ProfileSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Name != "smartphone" || summary.SecondaryCodes[3] != "1 Tb" {
		t.Errorf("unexpected summary: %+v", summary)
	}

	req = httptest.NewRequest(http.MethodGet, "/profiles/laptop", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown profile, got %d", rec.Code)
	}
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
