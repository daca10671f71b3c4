package ruleset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/napolitain/proai/internal/models"
)

// DefaultDiceSides is used when a ruleset does not configure dice
const DefaultDiceSides = 6

// ErrInvalidRuleset is wrapped by every validation error returned from New
var ErrInvalidRuleset = errors.New("invalid ruleset")

// Ruleset is an immutable, in-memory game-data view. It implements
// models.GameData and is safe for concurrent reads.
type Ruleset struct {
	name               string
	diceSides          int
	fightersOnCarriers bool

	resources   map[string]*models.Resource
	units       map[string]UnitDefinition
	unitNames   []string
	supports    map[string][]*models.SupportDescriptor // provider -> descriptors
	allSupports []*models.SupportDescriptor
	rules       []*models.ProductionRule
	ruleIndex   map[string]*models.ProductionRule
	players     map[string]*models.Player
	playerNames []string
}

// New validates def and builds a Ruleset from it
func New(def Definition) (*Ruleset, error) {
	r := &Ruleset{
		name:               def.Name,
		diceSides:          def.DiceSides,
		fightersOnCarriers: def.ProduceFightersOnCarriers,
		resources:          make(map[string]*models.Resource),
		units:              make(map[string]UnitDefinition),
		supports:           make(map[string][]*models.SupportDescriptor),
		ruleIndex:          make(map[string]*models.ProductionRule),
		players:            make(map[string]*models.Player),
	}
	if r.diceSides == 0 {
		r.diceSides = DefaultDiceSides
	}
	if r.diceSides < 0 {
		return nil, fmt.Errorf("%w: dice sides must be positive, got %d", ErrInvalidRuleset, r.diceSides)
	}

	for _, name := range def.Resources {
		r.resources[name] = &models.Resource{Name: name}
	}

	for _, u := range def.Units {
		if u.Name == "" {
			return nil, fmt.Errorf("%w: unit without a name", ErrInvalidRuleset)
		}
		if _, dup := r.units[u.Name]; dup {
			return nil, fmt.Errorf("%w: unit %q defined twice", ErrInvalidRuleset, u.Name)
		}
		r.units[u.Name] = u
		r.unitNames = append(r.unitNames, u.Name)
	}
	sort.Strings(r.unitNames)

	for i, s := range def.Supports {
		desc, err := r.buildSupport(i, s)
		if err != nil {
			return nil, err
		}
		r.supports[desc.Provider] = append(r.supports[desc.Provider], desc)
		r.allSupports = append(r.allSupports, desc)
	}
	sort.SliceStable(r.allSupports, func(i, j int) bool {
		return r.allSupports[i].Name < r.allSupports[j].Name
	})

	for _, rd := range def.ProductionRules {
		rule, err := r.buildRule(rd)
		if err != nil {
			return nil, err
		}
		r.rules = append(r.rules, rule)
		r.ruleIndex[rule.Name] = rule
	}

	for _, pd := range def.Players {
		player, err := r.buildPlayer(pd)
		if err != nil {
			return nil, err
		}
		r.players[player.Name] = player
		r.playerNames = append(r.playerNames, player.Name)
	}

	return r, nil
}

func (r *Ruleset) buildSupport(i int, s SupportDefinition) (*models.SupportDescriptor, error) {
	if _, ok := r.units[s.Provider]; !ok {
		return nil, fmt.Errorf("%w: support %q provided by unknown unit %q", ErrInvalidRuleset, s.Name, s.Provider)
	}
	for _, target := range s.UnitTypes {
		if _, ok := r.units[target]; !ok {
			return nil, fmt.Errorf("%w: support %q targets unknown unit %q", ErrInvalidRuleset, s.Name, target)
		}
	}
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("supportAttachment%s%d", s.Provider, i)
	}
	bonusType := s.BonusType
	if bonusType == "" {
		bonusType = name
	}
	if s.Bonus < 0 {
		return nil, fmt.Errorf("%w: support %q has negative bonus %d", ErrInvalidRuleset, name, s.Bonus)
	}
	number := 1
	if s.Number != nil {
		number = *s.Number
	}
	if number < 0 {
		return nil, fmt.Errorf("%w: support %q has negative number %d", ErrInvalidRuleset, name, number)
	}
	return &models.SupportDescriptor{
		Name:       name,
		Provider:   s.Provider,
		BonusType:  bonusType,
		Bonus:      s.Bonus,
		Number:     number,
		Strength:   s.Strength,
		Roll:       s.Roll,
		Offence:    s.Offence,
		Defence:    s.Defence,
		ImpArtTech: s.ImpArtTech,
		UnitTypes:  append([]string(nil), s.UnitTypes...),
	}, nil
}

func (r *Ruleset) buildRule(rd RuleDefinition) (*models.ProductionRule, error) {
	if rd.Name == "" {
		return nil, fmt.Errorf("%w: production rule without a name", ErrInvalidRuleset)
	}
	if _, dup := r.ruleIndex[rd.Name]; dup {
		return nil, fmt.Errorf("%w: production rule %q defined twice", ErrInvalidRuleset, rd.Name)
	}
	if len(rd.Results) == 0 {
		return nil, fmt.Errorf("%w: production rule %q produces nothing", ErrInvalidRuleset, rd.Name)
	}
	results := make(map[string]int, len(rd.Results))
	for unitType, n := range rd.Results {
		if _, ok := r.units[unitType]; !ok {
			return nil, fmt.Errorf("%w: production rule %q produces unknown unit %q", ErrInvalidRuleset, rd.Name, unitType)
		}
		if n < 1 {
			return nil, fmt.Errorf("%w: production rule %q produces %d %s", ErrInvalidRuleset, rd.Name, n, unitType)
		}
		results[unitType] = n
	}
	return &models.ProductionRule{
		Name:    rd.Name,
		Costs:   models.ResourceMap(rd.Costs).Clone(),
		Results: results,
	}, nil
}

func (r *Ruleset) buildPlayer(pd PlayerDefinition) (*models.Player, error) {
	if pd.Name == "" {
		return nil, fmt.Errorf("%w: player without a name", ErrInvalidRuleset)
	}
	if _, dup := r.players[pd.Name]; dup {
		return nil, fmt.Errorf("%w: player %q defined twice", ErrInvalidRuleset, pd.Name)
	}
	techs := make(map[models.TechName]bool, len(pd.Techs))
	for _, t := range pd.Techs {
		name := models.TechName(t)
		if !models.IsKnownTech(name) {
			return nil, fmt.Errorf("%w: player %q has unknown tech %q", ErrInvalidRuleset, pd.Name, t)
		}
		techs[name] = true
	}
	for _, rule := range pd.ProductionRules {
		if _, ok := r.ruleIndex[rule]; !ok {
			return nil, fmt.Errorf("%w: player %q uses unknown production rule %q", ErrInvalidRuleset, pd.Name, rule)
		}
	}
	return &models.Player{
		Name:            pd.Name,
		Techs:           techs,
		ProductionRules: append([]string(nil), pd.ProductionRules...),
	}, nil
}

// Name returns the ruleset name
func (r *Ruleset) Name() string {
	return r.name
}

// Resource implements models.ResourceList
func (r *Ruleset) Resource(name string) (*models.Resource, bool) {
	res, ok := r.resources[name]
	return res, ok
}

// DiceSides implements models.DiceConfig
func (r *Ruleset) DiceSides() int {
	return r.diceSides
}

// ProduceFightersOnCarriers implements models.Properties
func (r *Ruleset) ProduceFightersOnCarriers() bool {
	return r.fightersOnCarriers
}

// HasImprovedArtillerySupport implements models.TechTracker
func (r *Ruleset) HasImprovedArtillerySupport(player *models.Player) bool {
	return player.HasTech(models.TechImprovedArtillerySupport)
}

// UnitNames returns all unit type names in deterministic order
func (r *Ruleset) UnitNames() []string {
	return append([]string(nil), r.unitNames...)
}

// Player returns the named player
func (r *Ruleset) Player(name string) (*models.Player, bool) {
	p, ok := r.players[name]
	return p, ok
}

// Players returns all players in definition order
func (r *Ruleset) Players() []*models.Player {
	out := make([]*models.Player, 0, len(r.playerNames))
	for _, name := range r.playerNames {
		out = append(out, r.players[name])
	}
	return out
}

// ProductionRule returns the named rule
func (r *Ruleset) ProductionRule(name string) (*models.ProductionRule, bool) {
	rule, ok := r.ruleIndex[name]
	return rule, ok
}

// ProductionRules returns the rules a player may buy. A nil player or a
// player without an explicit list gets every rule.
func (r *Ruleset) ProductionRules(player *models.Player) []*models.ProductionRule {
	if player == nil || len(player.ProductionRules) == 0 {
		return append([]*models.ProductionRule(nil), r.rules...)
	}
	out := make([]*models.ProductionRule, 0, len(player.ProductionRules))
	for _, name := range player.ProductionRules {
		out = append(out, r.ruleIndex[name])
	}
	return out
}
