package ruleset

// Definition is the serialized form of a ruleset. The same struct is
// decoded from JSON, YAML and HCL.
type Definition struct {
	Name                      string              `json:"name" yaml:"name" hcl:"name,optional"`
	DiceSides                 int                 `json:"dice_sides" yaml:"dice_sides" hcl:"dice_sides,optional"`
	ProduceFightersOnCarriers bool                `json:"produce_fighters_on_carriers" yaml:"produce_fighters_on_carriers" hcl:"produce_fighters_on_carriers,optional"`
	Resources                 []string            `json:"resources" yaml:"resources" hcl:"resources,optional"`
	Units                     []UnitDefinition    `json:"units" yaml:"units" hcl:"unit,block"`
	Supports                  []SupportDefinition `json:"supports" yaml:"supports" hcl:"support,block"`
	ProductionRules           []RuleDefinition    `json:"production_rules" yaml:"production_rules" hcl:"production_rule,block"`
	Players                   []PlayerDefinition  `json:"players" yaml:"players" hcl:"player,block"`
}

// UnitDefinition contains static unit type data
type UnitDefinition struct {
	Name              string `json:"name" yaml:"name" hcl:"name,label"`
	Movement          int    `json:"movement" yaml:"movement" hcl:"movement,optional"`
	Attack            int    `json:"attack" yaml:"attack" hcl:"attack,optional"`
	Defense           int    `json:"defense" yaml:"defense" hcl:"defense,optional"`
	HitPoints         *int   `json:"hit_points,omitempty" yaml:"hit_points,omitempty" hcl:"hit_points,optional"` // nil means 1
	IsInfrastructure  bool   `json:"is_infrastructure" yaml:"is_infrastructure" hcl:"is_infrastructure,optional"`
	MarineBonus       int    `json:"marine_bonus" yaml:"marine_bonus" hcl:"marine_bonus,optional"`
	TransportCost     int    `json:"transport_cost" yaml:"transport_cost" hcl:"transport_cost,optional"`
	TransportCapacity int    `json:"transport_capacity" yaml:"transport_capacity" hcl:"transport_capacity,optional"`
	CarrierCost       int    `json:"carrier_cost" yaml:"carrier_cost" hcl:"carrier_cost,optional"`
	CarrierCapacity   int    `json:"carrier_capacity" yaml:"carrier_capacity" hcl:"carrier_capacity,optional"`
	IsAir             bool   `json:"is_air" yaml:"is_air" hcl:"is_air,optional"`
	IsSea             bool   `json:"is_sea" yaml:"is_sea" hcl:"is_sea,optional"`
	IsSub             bool   `json:"is_sub" yaml:"is_sub" hcl:"is_sub,optional"`
	IsDestroyer       bool   `json:"is_destroyer" yaml:"is_destroyer" hcl:"is_destroyer,optional"`
	IsLandTransport   bool   `json:"is_land_transport" yaml:"is_land_transport" hcl:"is_land_transport,optional"`
	MaxBuiltPerPlayer *int   `json:"max_built_per_player,omitempty" yaml:"max_built_per_player,omitempty" hcl:"max_built_per_player,optional"` // nil means unlimited
}

// SupportDefinition describes a support attachment on a provider unit
type SupportDefinition struct {
	Name       string   `json:"name" yaml:"name" hcl:"name,label"`
	Provider   string   `json:"provider" yaml:"provider" hcl:"provider"`
	BonusType  string   `json:"bonus_type" yaml:"bonus_type" hcl:"bonus_type,optional"`
	Bonus      int      `json:"bonus" yaml:"bonus" hcl:"bonus,optional"`
	Number     *int     `json:"number,omitempty" yaml:"number,omitempty" hcl:"number,optional"` // nil means 1
	Strength   bool     `json:"strength" yaml:"strength" hcl:"strength,optional"`
	Roll       bool     `json:"roll" yaml:"roll" hcl:"roll,optional"`
	Offence    bool     `json:"offence" yaml:"offence" hcl:"offence,optional"`
	Defence    bool     `json:"defence" yaml:"defence" hcl:"defence,optional"`
	ImpArtTech bool     `json:"imp_art_tech" yaml:"imp_art_tech" hcl:"imp_art_tech,optional"`
	UnitTypes  []string `json:"unit_types" yaml:"unit_types" hcl:"unit_types"`
}

// RuleDefinition describes a production rule
type RuleDefinition struct {
	Name    string         `json:"name" yaml:"name" hcl:"name,label"`
	Costs   map[string]int `json:"costs" yaml:"costs" hcl:"costs"`
	Results map[string]int `json:"results" yaml:"results" hcl:"results"`
}

// PlayerDefinition describes a player and its researched techs
type PlayerDefinition struct {
	Name            string   `json:"name" yaml:"name" hcl:"name,label"`
	Techs           []string `json:"techs" yaml:"techs" hcl:"techs,optional"`
	ProductionRules []string `json:"production_rules" yaml:"production_rules" hcl:"production_rules,optional"`
}
