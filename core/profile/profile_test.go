// Package profile - profile and registry tests
package profile

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuiltinProfilesAreValid(t *testing.T) {
	for _, p := range []*Profile{Smartphone(), PrintRun()} {
		if err := p.Validate(); err != nil {
			t.Errorf("built-in profile %q is invalid: %v", p.Name, err)
		}
	}
}

func TestBuiltinProfilesRegistered(t *testing.T) {
	for _, name := range []string{"smartphone", "print-run"} {
		if _, ok := Get(name); !ok {
			t.Errorf("built-in profile %q not registered", name)
		}
	}
}

func TestValidateRejectsBrokenProfiles(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Profile)
		want string
	}{
		{"empty name", func(p *Profile) { p.Name = "" }, "name is required"},
		{"zero base quantity", func(p *Profile) { p.BaseQuantity = 0 }, "base_quantity"},
		{"empty primary table", func(p *Profile) { p.Primary = nil }, "primary coefficient table is empty"},
		{"empty secondary table", func(p *Profile) { p.Secondary = nil }, "secondary coefficient table is empty"},
		{"duplicate code", func(p *Profile) {
			p.Primary = append(p.Primary, Coefficient{Code: "iPhone 15", Factor: dec("2.0")})
		}, "duplicate code"},
		{"zero factor", func(p *Profile) {
			p.Primary[0].Factor = decimal.Zero
		}, "must be positive"},
		{"negative overhead", func(p *Profile) {
			p.Costs.OverheadAdminPercent = decimal.NewFromInt(-1)
		}, "cannot be negative"},
		{"non-ascending tiers", func(p *Profile) {
			p.MaterialsTiers = []DiscountTier{
				{MinQuantity: 500, Rate: dec("0.85")},
				{MinQuantity: 100, Rate: dec("0.9")},
			}
		}, "overlap"},
		{"tier rate above 1", func(p *Profile) {
			p.MaterialsTiers[0].Rate = dec("1.1")
		}, "rate must be in (0, 1]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Smartphone()
			tc.mod(p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCoefficientTableLookup(t *testing.T) {
	table := Smartphone().Primary

	factor, ok := table.Lookup("iPhone 15 Plus")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if !factor.Equal(dec("1.08")) {
		t.Errorf("expected factor 1.08, got %s", factor)
	}

	if _, ok := table.Lookup("Pixel 9"); ok {
		t.Error("lookup of unknown code succeeded")
	}

	codes := table.Codes()
	if len(codes) != 4 || codes[0] != "iPhone 15" || codes[3] != "iPhone 15 Pro Max" {
		t.Errorf("codes not returned in table order: %v", codes)
	}
}

func TestMaterialsDiscountWithoutTiers(t *testing.T) {
	p := Smartphone()
	p.MaterialsTiers = nil

	if got := p.MaterialsDiscount(100000); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected discount 1 without tiers, got %s", got)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(Smartphone()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := reg.Register(Smartphone()); err == nil {
		t.Error("duplicate registration succeeded")
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	reg := NewRegistry()

	p := Smartphone()
	p.BaseQuantity = 0
	if err := reg.Register(p); err == nil {
		t.Error("invalid profile registered")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Smartphone()); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(PrintRun()); err != nil {
		t.Fatal(err)
	}

	names := reg.Names()
	if len(names) != 2 || names[0] != "print-run" || names[1] != "smartphone" {
		t.Errorf("expected sorted names [print-run smartphone], got %v", names)
	}
}
