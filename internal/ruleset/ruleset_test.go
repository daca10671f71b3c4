package ruleset

import (
	"errors"
	"testing"

	"github.com/napolitain/proai/internal/models"
	"github.com/napolitain/proai/internal/units"
)

func TestClassicRulesetIsValid(t *testing.T) {
	r := Classic()

	if r.DiceSides() != 6 {
		t.Errorf("DiceSides = %d, want 6", r.DiceSides())
	}
	if !r.ProduceFightersOnCarriers() {
		t.Error("classic allows fighters on carriers")
	}
	if _, ok := r.Resource(models.PUs); !ok {
		t.Error("classic must define PUs")
	}
	if len(r.UnitNames()) != 13 {
		t.Errorf("expected 13 unit types, got %d", len(r.UnitNames()))
	}
	if len(r.Players()) != 3 || r.Players()[0].Name != "Russians" {
		t.Errorf("unexpected players %v", r.Players())
	}
}

func TestDefaultsApplied(t *testing.T) {
	r, err := New(Definition{
		Units: []UnitDefinition{{Name: "infantry", Attack: 1, Defense: 2}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.DiceSides() != DefaultDiceSides {
		t.Errorf("DiceSides = %d, want default", r.DiceSides())
	}
	stats, ok := r.UnitStats("infantry", nil)
	if !ok {
		t.Fatal("infantry missing")
	}
	if stats.HitPoints != 1 {
		t.Errorf("HitPoints = %d, want default 1", stats.HitPoints)
	}
	if stats.MaxBuiltPerPlayer != -1 {
		t.Errorf("MaxBuiltPerPlayer = %d, want unlimited", stats.MaxBuiltPerPlayer)
	}
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	base := func() Definition {
		return Definition{
			Resources: []string{"PUs"},
			Units:     []UnitDefinition{{Name: "infantry"}, {Name: "artillery"}},
		}
	}

	tests := map[string]func(d *Definition){
		"negative dice": func(d *Definition) { d.DiceSides = -6 },
		"duplicate unit": func(d *Definition) {
			d.Units = append(d.Units, UnitDefinition{Name: "infantry"})
		},
		"unknown provider": func(d *Definition) {
			d.Supports = []SupportDefinition{{Name: "s", Provider: "zeppelin", UnitTypes: []string{"infantry"}}}
		},
		"unknown target": func(d *Definition) {
			d.Supports = []SupportDefinition{{Name: "s", Provider: "artillery", UnitTypes: []string{"zeppelin"}}}
		},
		"unknown result": func(d *Definition) {
			d.ProductionRules = []RuleDefinition{{Name: "buyZeppelin", Results: map[string]int{"zeppelin": 1}}}
		},
		"empty result": func(d *Definition) {
			d.ProductionRules = []RuleDefinition{{Name: "buyNothing"}}
		},
		"unknown tech": func(d *Definition) {
			d.Players = []PlayerDefinition{{Name: "Italians", Techs: []string{"heavy_bomber"}}}
		},
		"negative support number": func(d *Definition) {
			n := -1
			d.Supports = []SupportDefinition{{Name: "s", Provider: "artillery", Bonus: 1, Number: &n, UnitTypes: []string{"infantry"}}}
		},
		"negative support bonus": func(d *Definition) {
			d.Supports = []SupportDefinition{{Name: "s", Provider: "artillery", Bonus: -1, UnitTypes: []string{"infantry"}}}
		},
		"unknown player rule": func(d *Definition) {
			d.Players = []PlayerDefinition{{Name: "Italians", ProductionRules: []string{"buyZeppelin"}}}
		},
	}

	for name, mutate := range tests {
		def := base()
		mutate(&def)
		_, err := New(def)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !errors.Is(err, ErrInvalidRuleset) {
			t.Errorf("%s: error %v does not wrap ErrInvalidRuleset", name, err)
		}
	}
}

func TestSupportNumberDefaultsToOneButKeepsZero(t *testing.T) {
	zero := 0
	r, err := New(Definition{
		Units: []UnitDefinition{{Name: "infantry"}, {Name: "artillery"}, {Name: "decoy"}},
		Supports: []SupportDefinition{
			{Name: "arty", Provider: "artillery", Bonus: 1, Strength: true, Offence: true, UnitTypes: []string{"infantry"}},
			{Name: "dud", Provider: "decoy", Bonus: 1, Number: &zero, Strength: true, Offence: true, UnitTypes: []string{"infantry"}},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Supports("artillery")[0].Number; got != 1 {
		t.Errorf("omitted number = %d, want 1", got)
	}
	if got := r.Supports("decoy")[0].Number; got != 0 {
		t.Errorf("explicit zero number = %d, want 0", got)
	}

	pool := append(units.Create("decoy", nil, 2), units.Create("infantry", nil, 2)...)
	groups, remaining := r.AvailableSupport(pool, false)
	if len(groups) != 0 || len(remaining) != 0 {
		t.Errorf("zero-capacity support should not be available, got %v", groups)
	}
}

func TestUnitStatsTechAdjustments(t *testing.T) {
	r := Classic()
	germans, _ := r.Player("Germans")
	americans, _ := r.Player("Americans")
	russians, _ := r.Player("Russians")

	sub, _ := r.UnitStats("submarine", germans)
	if sub.Attack != 3 {
		t.Errorf("super subs attack = %d, want 3", sub.Attack)
	}
	fighter, _ := r.UnitStats("fighter", germans)
	if fighter.Defense != 5 {
		t.Errorf("jet power fighter defense = %d, want 5", fighter.Defense)
	}
	bomber, _ := r.UnitStats("bomber", germans)
	if bomber.Defense != 1 {
		t.Errorf("jet power must not touch bombers, got defense %d", bomber.Defense)
	}
	longRange, _ := r.UnitStats("fighter", americans)
	if longRange.Movement != 6 {
		t.Errorf("long range fighter movement = %d, want 6", longRange.Movement)
	}
	plain, _ := r.UnitStats("submarine", russians)
	if plain.Attack != 2 {
		t.Errorf("unadjusted sub attack = %d, want 2", plain.Attack)
	}

	if _, ok := r.UnitStats("zeppelin", russians); ok {
		t.Error("unknown unit should not resolve")
	}
}

func TestAvailableSupportSupply(t *testing.T) {
	r := Classic()
	russians, _ := r.Player("Russians")
	americans, _ := r.Player("Americans")

	pool := units.Combine(
		units.Create("artillery", russians, 2),
		units.Create("infantry", russians, 3),
	)
	groups, remaining := r.AvailableSupport(pool, false)
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Fatalf("expected one group with one descriptor, got %v", groups)
	}
	arty := groups[0][0]
	if remaining[arty] != 2 {
		t.Errorf("remaining = %d, want 2", remaining[arty])
	}

	// Improved artillery support doubles supply for the owner
	pool = units.Create("artillery", americans, 2)
	_, remaining = r.AvailableSupport(pool, false)
	if remaining[arty] != 4 {
		t.Errorf("improved remaining = %d, want 4", remaining[arty])
	}

	// Artillery support is offence only
	groups, _ = r.AvailableSupport(pool, true)
	if len(groups) != 0 {
		t.Errorf("expected no defensive support, got %v", groups)
	}

	// No providers, no support
	groups, _ = r.AvailableSupport(units.Create("infantry", russians, 4), false)
	if len(groups) != 0 {
		t.Errorf("expected no groups without providers, got %v", groups)
	}
}

func TestAvailableSupportGroupsByBonusType(t *testing.T) {
	r, err := New(Definition{
		Units: []UnitDefinition{{Name: "infantry"}, {Name: "artillery"}, {Name: "general"}},
		Supports: []SupportDefinition{
			{Name: "b", Provider: "general", BonusType: "Leader", Offence: true, UnitTypes: []string{"infantry"}},
			{Name: "a", Provider: "artillery", BonusType: "Arty", Offence: true, UnitTypes: []string{"infantry"}},
			{Name: "c", Provider: "general", BonusType: "Arty", Offence: true, UnitTypes: []string{"infantry"}},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pool := []models.Unit{{Type: "artillery"}, {Type: "general"}, {Type: "infantry"}}
	groups, remaining := r.AvailableSupport(pool, false)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0][0].BonusType != "Arty" || len(groups[0]) != 2 {
		t.Errorf("first group should be Arty with 2 descriptors, got %v", groups[0])
	}
	if groups[0][0].Name != "a" || groups[0][1].Name != "c" {
		t.Errorf("descriptors not ordered by name: %s, %s", groups[0][0].Name, groups[0][1].Name)
	}
	if groups[1][0].BonusType != "Leader" {
		t.Errorf("second group should be Leader, got %s", groups[1][0].BonusType)
	}
	if len(remaining) != 3 {
		t.Errorf("expected 3 remaining entries, got %d", len(remaining))
	}
	if len(r.Supports("general")) != 2 {
		t.Errorf("general grants 2 supports, got %d", len(r.Supports("general")))
	}
}

func TestProductionRulesPerPlayer(t *testing.T) {
	r, err := New(Definition{
		Units: []UnitDefinition{{Name: "infantry"}, {Name: "armour"}},
		ProductionRules: []RuleDefinition{
			{Name: "buyInfantry", Costs: map[string]int{"PUs": 3}, Results: map[string]int{"infantry": 1}},
			{Name: "buyArmour", Costs: map[string]int{"PUs": 5}, Results: map[string]int{"armour": 1}},
		},
		Players: []PlayerDefinition{
			{Name: "Chinese", ProductionRules: []string{"buyInfantry"}},
			{Name: "British"},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	chinese, _ := r.Player("Chinese")
	if rules := r.ProductionRules(chinese); len(rules) != 1 || rules[0].Name != "buyInfantry" {
		t.Errorf("Chinese rules = %v", rules)
	}
	british, _ := r.Player("British")
	if rules := r.ProductionRules(british); len(rules) != 2 {
		t.Errorf("British should get all rules, got %v", rules)
	}
	if _, ok := r.ProductionRule("buyArmour"); !ok {
		t.Error("buyArmour missing")
	}
}
