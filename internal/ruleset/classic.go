package ruleset

// ClassicDefinition returns the built-in ruleset used when no ruleset file
// is given (hardcoded from the revised edition unit charts)
func ClassicDefinition() Definition {
	one := 1
	two := 2
	zero := 0
	return Definition{
		Name:                      "classic",
		DiceSides:                 6,
		ProduceFightersOnCarriers: true,
		Resources:                 []string{"PUs", "techTokens"},
		Units: []UnitDefinition{
			{Name: "infantry", Movement: 1, Attack: 1, Defense: 2, TransportCost: 2},
			{Name: "artillery", Movement: 1, Attack: 2, Defense: 2, TransportCost: 3},
			{Name: "armour", Movement: 2, Attack: 3, Defense: 3, TransportCost: 3},
			{Name: "marine", Movement: 1, Attack: 1, Defense: 2, TransportCost: 2, MarineBonus: 1},
			{Name: "fighter", Movement: 4, Attack: 3, Defense: 4, IsAir: true, CarrierCost: 1},
			{Name: "bomber", Movement: 6, Attack: 4, Defense: 1, IsAir: true},
			{Name: "transport", Movement: 2, Attack: 0, Defense: 1, IsSea: true, TransportCapacity: 5},
			{Name: "submarine", Movement: 2, Attack: 2, Defense: 1, IsSea: true, IsSub: true},
			{Name: "destroyer", Movement: 2, Attack: 2, Defense: 2, IsSea: true, IsDestroyer: true},
			{Name: "cruiser", Movement: 2, Attack: 3, Defense: 3, IsSea: true},
			{Name: "carrier", Movement: 2, Attack: 1, Defense: 2, IsSea: true, CarrierCapacity: 2},
			{Name: "battleship", Movement: 2, Attack: 4, Defense: 4, IsSea: true, HitPoints: &two},
			{Name: "factory", IsInfrastructure: true, HitPoints: &zero},
		},
		Supports: []SupportDefinition{
			{
				Name:       "supportAttachmentArtillery",
				Provider:   "artillery",
				BonusType:  "ArtyOffence",
				Bonus:      1,
				Number:     &one,
				Strength:   true,
				Offence:    true,
				ImpArtTech: true,
				UnitTypes:  []string{"infantry", "marine"},
			},
		},
		ProductionRules: []RuleDefinition{
			{Name: "buyInfantry", Costs: map[string]int{"PUs": 3}, Results: map[string]int{"infantry": 1}},
			{Name: "buyArtillery", Costs: map[string]int{"PUs": 4}, Results: map[string]int{"artillery": 1}},
			{Name: "buyArmour", Costs: map[string]int{"PUs": 5}, Results: map[string]int{"armour": 1}},
			{Name: "buyMarine", Costs: map[string]int{"PUs": 4}, Results: map[string]int{"marine": 1}},
			{Name: "buyFighter", Costs: map[string]int{"PUs": 10}, Results: map[string]int{"fighter": 1}},
			{Name: "buyBomber", Costs: map[string]int{"PUs": 12}, Results: map[string]int{"bomber": 1}},
			{Name: "buyTransport", Costs: map[string]int{"PUs": 7}, Results: map[string]int{"transport": 1}},
			{Name: "buySubmarine", Costs: map[string]int{"PUs": 6}, Results: map[string]int{"submarine": 1}},
			{Name: "buyDestroyer", Costs: map[string]int{"PUs": 8}, Results: map[string]int{"destroyer": 1}},
			{Name: "buyCruiser", Costs: map[string]int{"PUs": 12}, Results: map[string]int{"cruiser": 1}},
			{Name: "buyCarrier", Costs: map[string]int{"PUs": 14}, Results: map[string]int{"carrier": 1}},
			{Name: "buyBattleship", Costs: map[string]int{"PUs": 20}, Results: map[string]int{"battleship": 1}},
			{Name: "buyFactory", Costs: map[string]int{"PUs": 15}, Results: map[string]int{"factory": 1}},
		},
		Players: []PlayerDefinition{
			{Name: "Russians"},
			{Name: "Germans", Techs: []string{"super_subs", "jet_power"}},
			{Name: "Americans", Techs: []string{"improved_artillery_support", "long_range_aircraft"}},
		},
	}
}

// Classic builds the built-in ruleset
func Classic() *Ruleset {
	r, err := New(ClassicDefinition())
	if err != nil {
		panic("classic ruleset is invalid: " + err.Error())
	}
	return r
}
