// Package purchase scores purchasable unit types so an AI can rank what to
// buy. An Option is a valuation snapshot of one production rule for one
// player; it must be rebuilt whenever techs or rules change.
package purchase

import (
	"errors"
	"fmt"
	"math"

	"github.com/napolitain/proai/internal/models"
)

// MarineBonusFactor scales the marine bonus into amphibious attack
const MarineBonusFactor = 0.5

// Option is an immutable valuation snapshot of one purchase option
type Option struct {
	productionRule *models.ProductionRule
	unitType       string
	player         *models.Player

	cost              int
	costs             models.ResourceMap
	movement          int
	quantity          int
	hitPoints         int
	attack            float64
	amphibAttack      float64
	defense           float64
	transportCost     int
	carrierCost       int
	isAir             bool
	isSea             bool
	isSub             bool
	isDestroyer       bool
	isTransport       bool
	isLandTransport   bool
	isCarrier         bool
	carrierCapacity   int
	diceSides         int
	maxBuiltPerPlayer int

	transportEfficiency float64
	costPerHitPoint     float64
	hitPointEfficiency  float64
	attackEfficiency    float64
	defenseEfficiency   float64

	supports         []*models.SupportDescriptor
	isAttackSupport  bool
	isDefenseSupport bool
}

// NewOption builds the valuation snapshot for unitType bought through rule
// by player. It fails with a *ConfigurationError when the ruleset has no PUs
// resource, the rule produces no units or the unit type has no attachment.
func NewOption(rule *models.ProductionRule, unitType string, player *models.Player, data models.GameData) (*Option, error) {
	if _, ok := data.Resource(models.PUs); !ok {
		return nil, &ConfigurationError{Rule: rule.Name, Reason: fmt.Sprintf("resource %q is not defined", models.PUs)}
	}
	if rule.TotalResults() < 1 {
		return nil, &ConfigurationError{Rule: rule.Name, Reason: "produces no units"}
	}
	stats, ok := data.UnitStats(unitType, player)
	if !ok {
		return nil, &ConfigurationError{Rule: rule.Name, Reason: fmt.Sprintf("unit type %q has no attachment", unitType)}
	}

	o := &Option{
		productionRule:    rule,
		unitType:          unitType,
		player:            player,
		cost:              rule.Costs.Get(models.PUs),
		costs:             rule.Costs.Clone(),
		movement:          stats.Movement,
		quantity:          rule.TotalResults(),
		isAir:             stats.IsAir,
		isSea:             stats.IsSea,
		isSub:             stats.IsSub,
		isDestroyer:       stats.IsDestroyer,
		isTransport:       stats.TransportCapacity > 0,
		isLandTransport:   stats.IsLandTransport,
		isCarrier:         stats.CarrierCapacity > 0,
		diceSides:         data.DiceSides(),
		maxBuiltPerPlayer: stats.MaxBuiltPerPlayer,
	}

	q := o.quantity
	o.hitPoints = stats.HitPoints * q
	if stats.IsInfrastructure {
		o.hitPoints = 0
	}
	o.attack = float64(stats.Attack * q)
	o.amphibAttack = o.attack + MarineBonusFactor*float64(stats.MarineBonus*q)
	o.defense = float64(stats.Defense * q)
	o.transportCost = stats.TransportCost * q
	o.carrierCost = stats.CarrierCost * q
	o.carrierCapacity = stats.CarrierCapacity * q

	cost := float64(o.cost)
	hp := float64(o.hitPoints)
	dice := DiceFactor(o.diceSides)

	o.transportEfficiency = float64(stats.TransportCapacity) / cost
	if o.hitPoints == 0 {
		o.costPerHitPoint = math.Inf(1)
	} else {
		o.costPerHitPoint = cost / hp
	}
	o.hitPointEfficiency = (hp + 0.2*o.attack*dice + 0.2*o.defense*dice) / cost
	o.attackEfficiency = (1 + hp) * (hp + o.attack*dice + 0.5*o.defense*dice) / cost
	o.defenseEfficiency = (1 + hp) * (hp + 0.5*o.attack*dice + o.defense*dice) / cost

	o.supports = data.Supports(unitType)
	for _, s := range o.supports {
		if s.Offence {
			o.isAttackSupport = true
		}
		if s.Defence {
			o.isDefenseSupport = true
		}
	}
	return o, nil
}

// NewOptions builds one Option per rule, valuing the rule as its primary
// unit type. Rules that fail to build are reported in the joined error and
// skipped; the remaining options are still returned.
func NewOptions(rules []*models.ProductionRule, player *models.Player, data models.GameData) ([]*Option, error) {
	var options []*Option
	var errs []error
	for _, rule := range rules {
		o, err := NewOption(rule, PrimaryUnitType(rule), player, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		options = append(options, o)
	}
	return options, errors.Join(errs...)
}

// PrimaryUnitType returns the unit type a rule is valued as: the
// alphabetically first of its results
func PrimaryUnitType(rule *models.ProductionRule) string {
	primary := ""
	for unitType := range rule.Results {
		if primary == "" || unitType < primary {
			primary = unitType
		}
	}
	return primary
}

// DiceFactor normalizes die-face values to a six-sided die
func DiceFactor(diceSides int) float64 {
	return 6 / float64(diceSides)
}

func (o *Option) ProductionRule() *models.ProductionRule { return o.productionRule }
func (o *Option) UnitType() string                       { return o.unitType }
func (o *Option) Player() *models.Player                 { return o.player }
func (o *Option) Cost() int                              { return o.cost }
func (o *Option) Movement() int                          { return o.movement }
func (o *Option) Quantity() int                          { return o.quantity }
func (o *Option) HitPoints() int                         { return o.hitPoints }
func (o *Option) Attack() float64                        { return o.attack }
func (o *Option) AmphibAttack() float64                  { return o.amphibAttack }
func (o *Option) Defense() float64                       { return o.defense }
func (o *Option) TransportCost() int                     { return o.transportCost }
func (o *Option) CarrierCost() int                       { return o.carrierCost }
func (o *Option) IsAir() bool                            { return o.isAir }
func (o *Option) IsSea() bool                            { return o.isSea }
func (o *Option) IsSub() bool                            { return o.isSub }
func (o *Option) IsDestroyer() bool                      { return o.isDestroyer }
func (o *Option) IsTransport() bool                      { return o.isTransport }
func (o *Option) IsLandTransport() bool                  { return o.isLandTransport }
func (o *Option) IsCarrier() bool                        { return o.isCarrier }
func (o *Option) CarrierCapacity() int                   { return o.carrierCapacity }
func (o *Option) TransportEfficiency() float64           { return o.transportEfficiency }
func (o *Option) CostPerHitPoint() float64               { return o.costPerHitPoint }
func (o *Option) HitPointEfficiency() float64            { return o.hitPointEfficiency }
func (o *Option) AttackEfficiency() float64              { return o.attackEfficiency }
func (o *Option) DefenseEfficiency() float64             { return o.defenseEfficiency }
func (o *Option) MaxBuiltPerPlayer() int                 { return o.maxBuiltPerPlayer }
func (o *Option) IsAttackSupport() bool                  { return o.isAttackSupport }
func (o *Option) IsDefenseSupport() bool                 { return o.isDefenseSupport }

// Costs returns a copy of the full per-resource cost
func (o *Option) Costs() models.ResourceMap {
	return o.costs.Clone()
}

// Supports returns the support descriptors this unit type grants
func (o *Option) Supports() []*models.SupportDescriptor {
	return append([]*models.SupportDescriptor(nil), o.supports...)
}

func (o *Option) String() string {
	return fmt.Sprintf("%s | cost=%d | moves=%d | quantity=%d | hitPointEfficiency=%g | attackEfficiency=%g | defenseEfficiency=%g | isSub=%t | isTransport=%t | isCarrier=%t",
		o.productionRule, o.cost, o.movement, o.quantity, o.hitPointEfficiency, o.attackEfficiency,
		o.defenseEfficiency, o.isSub, o.isTransport, o.isCarrier)
}
