package models

import (
	"testing"
)

func TestResourceMapGetAndNames(t *testing.T) {
	costs := ResourceMap{PUs: 7, "oil": 2}

	if costs.Get(PUs) != 7 {
		t.Errorf("Get(PUs) = %d, want 7", costs.Get(PUs))
	}
	if costs.Get("steel") != 0 {
		t.Errorf("Get(steel) = %d, want 0 for absent resource", costs.Get("steel"))
	}
	names := costs.Names()
	if len(names) != 2 || names[0] != PUs || names[1] != "oil" {
		t.Errorf("Names() = %v, want [PUs oil]", names)
	}
}

func TestResourceMapCloneIsIndependent(t *testing.T) {
	costs := ResourceMap{PUs: 3}
	clone := costs.Clone()
	clone[PUs] = 10

	if costs[PUs] != 3 {
		t.Errorf("original mutated through clone: %d", costs[PUs])
	}
}

func TestProductionRuleTotalResults(t *testing.T) {
	rule := &ProductionRule{
		Name:    "buyInfantry",
		Costs:   ResourceMap{PUs: 6},
		Results: map[string]int{"infantry": 2},
	}
	if rule.TotalResults() != 2 {
		t.Errorf("TotalResults() = %d, want 2", rule.TotalResults())
	}
	if rule.String() != "buyInfantry" {
		t.Errorf("String() = %q", rule.String())
	}
}

func TestPlayerHasTech(t *testing.T) {
	p := &Player{Name: "Germans", Techs: map[TechName]bool{TechJetPower: true}}

	if !p.HasTech(TechJetPower) {
		t.Error("expected jet power")
	}
	if p.HasTech(TechSuperSubs) {
		t.Error("unexpected super subs")
	}

	var nilPlayer *Player
	if nilPlayer.HasTech(TechJetPower) {
		t.Error("nil player must have no techs")
	}
}

func TestSupportDescriptorSides(t *testing.T) {
	s := &SupportDescriptor{Offence: true, UnitTypes: []string{"infantry"}}

	if !s.AppliesTo(false) {
		t.Error("offence descriptor should apply on attack")
	}
	if s.AppliesTo(true) {
		t.Error("offence-only descriptor should not apply on defense")
	}
	if !s.Targets("infantry") || s.Targets("armour") {
		t.Error("Targets mismatch")
	}
}

func TestIsKnownTech(t *testing.T) {
	for _, name := range AllTechNames() {
		if !IsKnownTech(name) {
			t.Errorf("%s should be known", name)
		}
	}
	if IsKnownTech("heavy_bomber") {
		t.Error("heavy_bomber is not modelled")
	}
}
