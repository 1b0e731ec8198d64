// Package registry holds the catalog of capturable creatures and the ordered
// tiers that partition it. The catalog is static data: it is loaded and
// validated once at startup and never mutated afterwards.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Validation errors returned (wrapped) by Catalog.Validate.
var (
	ErrNoTiers     = errors.New("registry: catalog has no tiers")
	ErrEmptyTier   = errors.New("registry: tier has no creatures")
	ErrBadRange    = errors.New("registry: tier range out of bounds")
	ErrDuplicateID = errors.New("registry: duplicate creature id")
	ErrEmptyName   = errors.New("registry: creature has no name")
)

// Stats are the six base attributes of a creature.
type Stats struct {
	HP        int `yaml:"hp"`
	Attack    int `yaml:"attack"`
	Defense   int `yaml:"defense"`
	SpAttack  int `yaml:"sp_attack"`
	SpDefense int `yaml:"sp_defense"`
	Speed     int `yaml:"speed"`
}

// Total returns the sum of all six attributes.
func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpAttack + s.SpDefense + s.Speed
}

// Descriptor describes one creature in the catalog.
type Descriptor struct {
	ID        int               `yaml:"id"`
	Name      string            `yaml:"name"`
	Localized map[string]string `yaml:"localized"`
	Base      Stats             `yaml:"stats"`

	// Presentation hints consumed by the asset library.
	Color  string  `yaml:"color"`
	Art    string  `yaml:"art"`
	Pitch  float64 `yaml:"pitch"`  // base frequency of the cry, Hz
	Voiced bool    `yaml:"voiced"` // whether a spoken-name cue exists
}

// Tier is a difficulty bracket: a half-open range [Start, End) into the
// catalog plus the ambience used while it is active.
type Tier struct {
	Index      int    `yaml:"-"`
	Name       string `yaml:"name"`
	Start      int    `yaml:"start"`
	End        int    `yaml:"end"`
	Background string `yaml:"background"`
	Music      string `yaml:"music"`
}

// Len returns the number of creatures in the tier.
func (t Tier) Len() int {
	return t.End - t.Start
}

// Catalog is the full ordered list of creatures and tiers.
type Catalog struct {
	Tiers     []Tier       `yaml:"tiers"`
	Creatures []Descriptor `yaml:"creatures"`

	byID map[int]int
}

// Validate checks the catalog invariants and builds the id index.
// A valid catalog has at least one tier, every tier has a non-empty range
// inside the creature list, and ids and names are unique and present.
func (c *Catalog) Validate() error {
	if len(c.Tiers) == 0 {
		return ErrNoTiers
	}
	for i := range c.Tiers {
		t := &c.Tiers[i]
		t.Index = i
		if t.Start < 0 || t.End > len(c.Creatures) || t.Start > t.End {
			return fmt.Errorf("tier %d (%s) [%d, %d) of %d: %w", i, t.Name, t.Start, t.End, len(c.Creatures), ErrBadRange)
		}
		if t.Start == t.End {
			return fmt.Errorf("tier %d (%s): %w", i, t.Name, ErrEmptyTier)
		}
	}

	c.byID = make(map[int]int, len(c.Creatures))
	for i := range c.Creatures {
		d := &c.Creatures[i]
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" {
			return fmt.Errorf("creature #%d: %w", d.ID, ErrEmptyName)
		}
		if _, dup := c.byID[d.ID]; dup {
			return fmt.Errorf("creature #%d (%s): %w", d.ID, d.Name, ErrDuplicateID)
		}
		c.byID[d.ID] = i
	}
	return nil
}

// TierCount returns the number of tiers.
func (c *Catalog) TierCount() int {
	return len(c.Tiers)
}

// Tier returns the tier at index i, clamped to the valid range.
func (c *Catalog) Tier(i int) Tier {
	if i < 0 {
		i = 0
	}
	if i >= len(c.Tiers) {
		i = len(c.Tiers) - 1
	}
	return c.Tiers[i]
}

// Lookup returns the creature with the given id.
func (c *Catalog) Lookup(id int) (Descriptor, bool) {
	if c.byID == nil {
		for _, d := range c.Creatures {
			if d.ID == id {
				return d, true
			}
		}
		return Descriptor{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return c.Creatures[i], true
}

// PickRandom draws a creature uniformly from the tier's range.
// The catalog must have been validated.
func (c *Catalog) PickRandom(rng *rand.Rand, tier int) Descriptor {
	t := c.Tier(tier)
	return c.Creatures[t.Start+rng.Intn(t.Len())]
}
