package purchase

import (
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/napolitain/proai/internal/logging"
	"github.com/napolitain/proai/internal/models"
	"github.com/napolitain/proai/internal/units"
)

// Support estimation constants
const (
	// SupportSaturation is the supportable-units-to-support ratio beyond
	// which added support has full value
	SupportSaturation = 2.0

	SupportNumberDiscount = 0.9
	SupportNumberExponent = 0.9

	// RollBonusFactor approximates the value of a rolled bonus per die side
	RollBonusFactor = 0.75
)

// SupportFactor estimates the combat value bonus one more unit of this type
// would add through the support it grants, for one side only. The result is
// per added unit and not yet dice-normalized. Support the enemy would
// receive is not considered.
func (o *Option) SupportFactor(ownedLocalUnits, unitsToPlace []models.Unit, data models.GameData, defense bool) float64 {
	if (!o.isAttackSupport && !defense) || (!o.isDefenseSupport && defense) {
		return 0
	}

	pool := units.Combine(ownedLocalUnits, unitsToPlace, units.Create(o.unitType, o.player, 1))
	groups, supportLeft := data.AvailableSupport(pool, defense)
	improvedArtillery := data.HasImprovedArtillerySupport(o.player)

	var trace *zap.Logger
	if logging.Enabled(zapcore.DebugLevel) {
		trace = logging.With(zap.String("unit", o.unitType), zap.Bool("defense", defense))
	}

	total := 0.0
	for _, usa := range o.supports {
		if !usa.AppliesTo(defense) {
			continue
		}
		for _, group := range groups {
			if !containsSupport(group, usa) {
				continue
			}

			numAddedSupport := usa.Number
			if usa.ImpArtTech && improvedArtillery {
				numAddedSupport *= 2
			}
			numSupportProvided := -numAddedSupport
			for _, usa2 := range group {
				numSupportProvided += supportLeft[usa2]
			}
			numSupportableUnits := units.CountMatching(pool, func(unitType string) bool {
				return groupTargets(group, unitType)
			})

			numExtraSupportableUnits := max(0, numSupportableUnits-numSupportProvided)

			// 0..1, full value until support outnumbers half the supportable units
			ratio := math.Min(1, SupportSaturation*float64(numExtraSupportableUnits)/float64(numSupportableUnits+numAddedSupport))

			bonus := 0.0
			if usa.Strength {
				bonus += float64(usa.Bonus)
			}
			if usa.Roll {
				bonus += float64(usa.Bonus*data.DiceSides()) * RollBonusFactor
			}

			supportFactor := math.Pow(float64(numAddedSupport)*SupportNumberDiscount, SupportNumberExponent) * bonus * ratio
			total += supportFactor

			if trace != nil {
				trace.Debug("support descriptor",
					zap.String("bonusType", usa.BonusType),
					zap.Float64("supportFactor", supportFactor),
					zap.Int("numSupportProvided", numSupportProvided),
					zap.Int("numSupportableUnits", numSupportableUnits),
					zap.Int("numAddedSupport", numAddedSupport),
					zap.Float64("ratio", ratio),
					zap.Float64("bonus", bonus))
			}
		}
	}

	if trace != nil {
		trace.Debug("support factor", zap.Float64("totalSupportFactor", total))
	}
	return total
}

// groupTargets reports whether any descriptor in group supports unitType
func groupTargets(group []*models.SupportDescriptor, unitType string) bool {
	for _, s := range group {
		if s.Targets(unitType) {
			return true
		}
	}
	return false
}

func containsSupport(group []*models.SupportDescriptor, s *models.SupportDescriptor) bool {
	for _, g := range group {
		if g == s {
			return true
		}
	}
	return false
}
