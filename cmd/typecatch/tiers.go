package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/registry"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the catalog tiers",
	Long:  `Shows every tier of the creature catalog with its size and how many of its creatures are rare.`,
	Args:  cobra.NoArgs,
	RunE:  runTiers,
}

func runTiers(_ *cobra.Command, _ []string) error {
	cat, err := registry.Load(flagCatalog)
	if err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	maxNameLen := 4 // "Tier" header
	for _, t := range cat.Tiers {
		maxNameLen = max(maxNameLen, len(t.Name))
	}

	fmt.Printf("Catalog: %d creatures in %d tiers\n\n", len(cat.Creatures), cat.TierCount())
	fmt.Printf("  %-3s  %-*s  %-9s  %-5s  %s\n", "#", maxNameLen, "Tier", "Creatures", "Rare", "Scene")
	fmt.Printf("  %-3s  %-*s  %-9s  %-5s  %s\n", "-", maxNameLen, "----", "---------", "----", "-----")

	for i, n := 0, cat.TierCount(); i < n; i++ {
		t := cat.Tier(i)
		rare := 0
		for _, d := range cat.Creatures[t.Start:t.End] {
			if d.Base.Total() >= cfg.Rarity.Cutoff {
				rare++
			}
		}
		fmt.Printf("  %-3d  %-*s  %-9d  %-5d  %s\n", i+1, maxNameLen, t.Name, t.Len(), rare, t.Background)
	}

	fmt.Println()
	fmt.Println("Run 'typecatch play' to start catching.")
	return nil
}
