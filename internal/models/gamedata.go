package models

// ResourceList looks up resources defined by the ruleset
type ResourceList interface {
	Resource(name string) (*Resource, bool)
}

// DiceConfig exposes the number of sides on a combat die
type DiceConfig interface {
	DiceSides() int
}

// UnitAttachments returns combat stats for a unit type, adjusted for player
type UnitAttachments interface {
	UnitStats(unitType string, player *Player) (UnitStats, bool)
}

// SupportRegistry returns the support descriptors a unit type grants
type SupportRegistry interface {
	Supports(unitType string) []*SupportDescriptor
}

// SupportCalculator resolves which support is available to a unit pool.
// Groups hold mutually-equivalent descriptors; remaining maps each
// descriptor to the capacity it can still allocate.
type SupportCalculator interface {
	AvailableSupport(pool []Unit, defense bool) (groups [][]*SupportDescriptor, remaining map[*SupportDescriptor]int)
}

// TechTracker answers tech queries that depend on ruleset semantics
type TechTracker interface {
	HasImprovedArtillerySupport(player *Player) bool
}

// Properties exposes ruleset switches
type Properties interface {
	ProduceFightersOnCarriers() bool
}

// GameData is the read-only view of a game the purchase engine consumes
type GameData interface {
	ResourceList
	DiceConfig
	UnitAttachments
	SupportRegistry
	SupportCalculator
	TechTracker
	Properties
}
