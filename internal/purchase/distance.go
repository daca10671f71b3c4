package purchase

import "math"

// FrontDistance is how close to the enemy a unit counts as already at the front
const FrontDistance = 1.5

// DistanceFactor converts movement into a multiplier that grows with the
// distance to the nearest enemy. The move factor saturates: 1 move gives
// 1.0, 2 gives 2.0, 3 gives 2.5, tending to 3.0. Land transports count one
// extra move. The result is always >= 1.
func DistanceFactor(enemyDistance, movement int, isLandTransport bool) float64 {
	distance := math.Max(0, float64(enemyDistance)-FrontDistance)
	moveValue := movement
	if isLandTransport {
		moveValue++
	}
	half := math.Pow(2, float64(moveValue-1))
	moveFactor := 1 + 2*(half-1)/half
	return math.Pow(moveFactor, distance/5)
}

func (o *Option) landDistanceFactor(enemyDistance int) float64 {
	return DistanceFactor(enemyDistance, o.movement, o.isLandTransport)
}
