package models

import "sort"

// PUs is the resource every purchase cost is normalized to
const PUs = "PUs"

// Resource represents a resource defined by the ruleset
type Resource struct {
	Name string
}

// ResourceMap maps resource names to amounts
type ResourceMap map[string]int

// Get returns the amount for a resource (0 if absent)
func (r ResourceMap) Get(name string) int {
	return r[name]
}

// Names returns the resource names in deterministic order
func (r ResourceMap) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of the map
func (r ResourceMap) Clone() ResourceMap {
	out := make(ResourceMap, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// TechName represents technology names as constants
type TechName string

const (
	TechImprovedArtillerySupport TechName = "improved_artillery_support"
	TechSuperSubs                TechName = "super_subs"
	TechJetPower                 TechName = "jet_power"
	TechLongRangeAircraft        TechName = "long_range_aircraft"
)

// AllTechNames returns all technology names in deterministic order
func AllTechNames() []TechName {
	return []TechName{
		TechImprovedArtillerySupport,
		TechSuperSubs,
		TechJetPower,
		TechLongRangeAircraft,
	}
}

// IsKnownTech reports whether name is one of AllTechNames
func IsKnownTech(name TechName) bool {
	for _, t := range AllTechNames() {
		if t == name {
			return true
		}
	}
	return false
}

// Player is a faction buying units
type Player struct {
	Name            string
	Techs           map[TechName]bool
	ProductionRules []string // Empty means every rule in the ruleset
}

// HasTech returns whether the player has researched a tech
func (p *Player) HasTech(name TechName) bool {
	if p == nil {
		return false
	}
	return p.Techs[name]
}

// ProductionRule is one purchasable line: pay Costs, receive Results
type ProductionRule struct {
	Name    string
	Costs   ResourceMap
	Results map[string]int // unit type -> count
}

// TotalResults returns how many units one purchase of this rule produces
func (r *ProductionRule) TotalResults() int {
	total := 0
	for _, n := range r.Results {
		total += n
	}
	return total
}

// String returns the rule name
func (r *ProductionRule) String() string {
	return r.Name
}

// Unit is a single unit instance in a territory or placement queue
type Unit struct {
	Type  string
	Owner string
}

// UnitStats contains per-unit attachment data, already adjusted for the
// owning player's techs
type UnitStats struct {
	Movement          int
	Attack            int
	Defense           int
	HitPoints         int
	IsInfrastructure  bool
	MarineBonus       int // Attack bonus when landing from a transport
	TransportCost     int
	TransportCapacity int
	CarrierCost       int
	CarrierCapacity   int
	IsAir             bool
	IsSea             bool
	IsSub             bool
	IsDestroyer       bool
	IsLandTransport   bool
	MaxBuiltPerPlayer int // -1 if unlimited
}

// SupportDescriptor grants a combat bonus from a provider unit type to
// target unit types. Identity is the pointer: two descriptors with equal
// fields are still distinct capacity pools.
type SupportDescriptor struct {
	Name       string
	Provider   string // Unit type that grants this support
	BonusType  string // Descriptors sharing a bonus type do not stack
	Bonus      int
	Number     int // Units supported per provider
	Strength   bool
	Roll       bool
	Offence    bool
	Defence    bool
	ImpArtTech bool     // Number doubles with improved artillery support
	UnitTypes  []string // Target unit types
}

// AppliesTo returns whether the descriptor is active on the given side
func (s *SupportDescriptor) AppliesTo(defense bool) bool {
	if defense {
		return s.Defence
	}
	return s.Offence
}

// Targets returns whether unitType is one of the descriptor's targets
func (s *SupportDescriptor) Targets(unitType string) bool {
	for _, t := range s.UnitTypes {
		if t == unitType {
			return true
		}
	}
	return false
}
