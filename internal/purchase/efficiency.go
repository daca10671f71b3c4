package purchase

import (
	"fmt"
	"math"

	"github.com/napolitain/proai/internal/models"
)

// ScoreExponent separates near-equal efficiencies so the best options
// dominate a ranking
const ScoreExponent = 30

// AmphibTransportExponent discounts units that take more transport space
const AmphibTransportExponent = -0.2

// Weights selects how much attack and defense count for a use case. A zero
// Sea factor means 1.
type Weights struct {
	Attack  float64
	Defense float64
	Sea     float64
}

var (
	FodderWeights     = Weights{Attack: 0.25, Defense: 0.25}
	AttackerWeights   = Weights{Attack: 1.25, Defense: 0.75}
	DefenderWeights   = Weights{Attack: 0.75, Defense: 1.25}
	SeaDefenseWeights = Weights{Attack: 0.75, Defense: 1}
)

func (w Weights) seaFactor() float64 {
	if w.Sea == 0 {
		return 1
	}
	return w.Sea
}

// Factors are the context-dependent multipliers of one evaluation
type Factors struct {
	SupportAttack  float64
	SupportDefense float64
	Distance       float64
}

// Region is the local situation an option is evaluated in
type Region struct {
	EnemyDistance              int
	OwnedLocalUnits            []models.Unit
	UnitsToPlace               []models.Unit
	NeedDestroyer              bool
	UnusedCarrierCapacity      int
	UnusedLocalCarrierCapacity int
}

// Efficiency is the shared scoring formula for fodder, attacker, defender
// and sea defense use cases
func (o *Option) Efficiency(w Weights, f Factors) float64 {
	q := float64(o.quantity)
	dice := float64(o.diceSides)
	hitPointPerUnitFactor := float64(3 + o.hitPoints/o.quantity)
	hitPointValue := float64(2 * o.hitPoints)
	attackValue := w.Attack * (o.attack + f.SupportAttack*q) * 6 / dice
	defenseValue := w.Defense * (o.defense + f.SupportDefense*q) * 6 / dice
	raw := (hitPointValue + attackValue + defenseValue) * hitPointPerUnitFactor * f.Distance * w.seaFactor() / float64(o.cost)
	return math.Pow(raw, ScoreExponent) / q
}

func (o *Option) supportFactors(data models.GameData, r Region) (attack, defense float64) {
	attack = o.SupportFactor(r.OwnedLocalUnits, r.UnitsToPlace, data, false)
	defense = o.SupportFactor(r.OwnedLocalUnits, r.UnitsToPlace, data, true)
	return attack, defense
}

// FodderScore values cheap hit points that soak casualties
func (o *Option) FodderScore(data models.GameData, r Region) float64 {
	sa, sd := o.supportFactors(data, r)
	distance := math.Sqrt(o.landDistanceFactor(r.EnemyDistance))
	return o.Efficiency(FodderWeights, Factors{SupportAttack: sa, SupportDefense: sd, Distance: distance})
}

// AttackerScore values front-line offence
func (o *Option) AttackerScore(data models.GameData, r Region) float64 {
	sa, sd := o.supportFactors(data, r)
	return o.Efficiency(AttackerWeights, Factors{SupportAttack: sa, SupportDefense: sd, Distance: o.landDistanceFactor(r.EnemyDistance)})
}

// DefenderScore values front-line defense
func (o *Option) DefenderScore(data models.GameData, r Region) float64 {
	sa, sd := o.supportFactors(data, r)
	return o.Efficiency(DefenderWeights, Factors{SupportAttack: sa, SupportDefense: sd, Distance: o.landDistanceFactor(r.EnemyDistance)})
}

// SeaDefenseScore values defending a sea zone. Air units only count when
// they can be produced onto a carrier with room for them.
func (o *Option) SeaDefenseScore(data models.GameData, r Region) float64 {
	if o.isAir && (o.carrierCost <= 0 || o.carrierCost > r.UnusedCarrierCapacity || !data.ProduceFightersOnCarriers()) {
		return 0
	}
	sa, sd := o.supportFactors(data, r)

	w := SeaDefenseWeights
	switch {
	case r.NeedDestroyer && o.isDestroyer:
		w.Sea = 8
	case o.isAir || (o.isCarrier && r.UnusedLocalCarrierCapacity <= 0):
		w.Sea = 4
	}
	return o.Efficiency(w, Factors{SupportAttack: sa, SupportDefense: sd, Distance: float64(o.movement)})
}

// AmphibScore values landing from transports, favouring marines and units
// that take little transport space
func (o *Option) AmphibScore(data models.GameData, r Region) float64 {
	sa, sd := o.supportFactors(data, r)
	q := float64(o.quantity)
	dice := float64(o.diceSides)
	hitPointPerUnitFactor := float64(3 + o.hitPoints/o.quantity)
	transportCostFactor := math.Pow(float64(o.transportCost), AmphibTransportExponent)
	hitPointValue := float64(2 * o.hitPoints)
	attackValue := (o.amphibAttack + sa*q) * 6 / dice
	defenseValue := (o.defense + sd*q) * 6 / dice
	raw := (hitPointValue + attackValue + defenseValue) * hitPointPerUnitFactor * transportCostFactor / float64(o.cost)
	return math.Pow(raw, ScoreExponent) / q
}

// TransportScore values pure transport capacity per cost
func (o *Option) TransportScore() float64 {
	return math.Pow(o.transportEfficiency, ScoreExponent) / float64(o.quantity)
}

// UseCase names a scoring formula
type UseCase int

const (
	Fodder UseCase = iota
	Attacker
	Defender
	SeaDefense
	Amphib
	Transport
)

// AllUseCases returns every use case in display order
func AllUseCases() []UseCase {
	return []UseCase{Fodder, Attacker, Defender, SeaDefense, Amphib, Transport}
}

func (u UseCase) String() string {
	switch u {
	case Fodder:
		return "fodder"
	case Attacker:
		return "attacker"
	case Defender:
		return "defender"
	case SeaDefense:
		return "sea-defense"
	case Amphib:
		return "amphib"
	case Transport:
		return "transport"
	}
	return fmt.Sprintf("UseCase(%d)", int(u))
}

// ParseUseCase is the inverse of UseCase.String
func ParseUseCase(s string) (UseCase, error) {
	for _, u := range AllUseCases() {
		if u.String() == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown use case %q", s)
}

// Score evaluates the option for one use case
func (o *Option) Score(u UseCase, data models.GameData, r Region) float64 {
	switch u {
	case Fodder:
		return o.FodderScore(data, r)
	case Attacker:
		return o.AttackerScore(data, r)
	case Defender:
		return o.DefenderScore(data, r)
	case SeaDefense:
		return o.SeaDefenseScore(data, r)
	case Amphib:
		return o.AmphibScore(data, r)
	case Transport:
		return o.TransportScore()
	}
	return 0
}
