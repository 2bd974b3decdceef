// Package cmd - profiles command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"retail-price/core/profile"
	"retail-price/internal/config"
)

// profilesCmd lists the registered profiles and their accepted codes
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List pricing profiles and their format codes",
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg.Pricing.ProfileDir != "" {
		if _, err := profile.NewLoader().LoadDir(cfg.Pricing.ProfileDir, profile.Default()); err != nil {
			return err
		}
	}

	for _, name := range profile.Names() {
		p, ok := profile.Get(name)
		if !ok {
			continue
		}
		fmt.Printf("%s\n", p.Name)
		if p.Description != "" {
			fmt.Printf("  %s\n", p.Description)
		}
		fmt.Printf("  base quantity: %d\n", p.BaseQuantity)
		fmt.Printf("  %s: %s\n", p.PrimaryLabel, strings.Join(p.Primary.Codes(), ", "))
		fmt.Printf("  %s: %s\n", p.SecondaryLabel, strings.Join(p.Secondary.Codes(), ", "))
		fmt.Println()
	}

	return nil
}
