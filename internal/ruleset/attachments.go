package ruleset

import (
	"sort"

	"github.com/napolitain/proai/internal/models"
)

// Tech stat adjustments
const (
	SuperSubsAttackBonus       = 1
	JetPowerDefenseBonus       = 1
	LongRangeAircraftMoveBonus = 2
)

// UnitStats implements models.UnitAttachments. Stats are adjusted for the
// player's techs: super subs (+1 sub attack), jet power (+1 defense for
// carrier-capable air) and long range aircraft (+2 air movement).
func (r *Ruleset) UnitStats(unitType string, player *models.Player) (models.UnitStats, bool) {
	def, ok := r.units[unitType]
	if !ok {
		return models.UnitStats{}, false
	}

	hitPoints := 1
	if def.HitPoints != nil {
		hitPoints = *def.HitPoints
	}
	maxBuilt := -1
	if def.MaxBuiltPerPlayer != nil {
		maxBuilt = *def.MaxBuiltPerPlayer
	}

	stats := models.UnitStats{
		Movement:          def.Movement,
		Attack:            def.Attack,
		Defense:           def.Defense,
		HitPoints:         hitPoints,
		IsInfrastructure:  def.IsInfrastructure,
		MarineBonus:       def.MarineBonus,
		TransportCost:     def.TransportCost,
		TransportCapacity: def.TransportCapacity,
		CarrierCost:       def.CarrierCost,
		CarrierCapacity:   def.CarrierCapacity,
		IsAir:             def.IsAir,
		IsSea:             def.IsSea,
		IsSub:             def.IsSub,
		IsDestroyer:       def.IsDestroyer,
		IsLandTransport:   def.IsLandTransport,
		MaxBuiltPerPlayer: maxBuilt,
	}

	if stats.IsSub && player.HasTech(models.TechSuperSubs) {
		stats.Attack += SuperSubsAttackBonus
	}
	if stats.IsAir && stats.CarrierCost > 0 && player.HasTech(models.TechJetPower) {
		stats.Defense += JetPowerDefenseBonus
	}
	if stats.IsAir && player.HasTech(models.TechLongRangeAircraft) {
		stats.Movement += LongRangeAircraftMoveBonus
	}
	return stats, true
}

// Supports implements models.SupportRegistry
func (r *Ruleset) Supports(unitType string) []*models.SupportDescriptor {
	return r.supports[unitType]
}

// AvailableSupport implements models.SupportCalculator. A descriptor is
// available when it applies to the requested side and at least one of its
// providers is in the pool. Its remaining capacity is Number per provider,
// doubled for owners with improved artillery support when the descriptor
// allows it. Descriptors sharing a bonus type form one group; groups are
// ordered by bonus type and descriptors by name.
func (r *Ruleset) AvailableSupport(pool []models.Unit, defense bool) ([][]*models.SupportDescriptor, map[*models.SupportDescriptor]int) {
	remaining := make(map[*models.SupportDescriptor]int)
	byBonusType := make(map[string][]*models.SupportDescriptor)

	for _, desc := range r.allSupports {
		if !desc.AppliesTo(defense) {
			continue
		}
		supply := 0
		for _, u := range pool {
			if u.Type != desc.Provider {
				continue
			}
			n := desc.Number
			if desc.ImpArtTech && r.HasImprovedArtillerySupport(r.players[u.Owner]) {
				n *= 2
			}
			supply += n
		}
		if supply == 0 {
			continue
		}
		remaining[desc] = supply
		byBonusType[desc.BonusType] = append(byBonusType[desc.BonusType], desc)
	}

	bonusTypes := make([]string, 0, len(byBonusType))
	for bt := range byBonusType {
		bonusTypes = append(bonusTypes, bt)
	}
	sort.Strings(bonusTypes)

	groups := make([][]*models.SupportDescriptor, 0, len(bonusTypes))
	for _, bt := range bonusTypes {
		groups = append(groups, byBonusType[bt])
	}
	return groups, remaining
}
