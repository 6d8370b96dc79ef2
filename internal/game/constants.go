package game

import "pong-service/domain"

// Court geometry. Everything the client renders is either a fixed transform
// or bounded by these ranges; anything else in a report is a cheating signal.
const (
	MaxScore = 5

	BallRadius = 0.75
	Padding    = 0.5

	BallPosXMin = -20.0
	BallPosXMax = 20.0
	BallPosYMin = 0.0
	BallPosYMax = 10.0
	BallPosZMin = -12.5
	BallPosZMax = 12.5

	BallScaleX = 1.0
	BallScaleY = 1.0
	BallScaleZ = 1.0

	PaddlePosY    = 1.0
	PaddlePosZMin = -8.5
	PaddlePosZMax = 8.5

	PaddleRotateX = 0.0
	PaddleRotateY = 0.0
	PaddleRotateZ = 0.0

	PaddleScaleX = 1.0
	PaddleScaleY = 1.0
	PaddleScaleZ = 4.0

	PaddleSpeed = 0.4
)

// trajectoryTolerance bounds how far the reported displacement ratio may
// drift from the last served direction ratio.
const trajectoryTolerance = 2 * Padding

// Serve vector distribution: |dirX| is uniform in (0,1) with a random sign,
// dirZ is the same flattened into (flattenMin, flattenMax) of its draw so
// serves never run parallel to the goal lines.
const (
	flattenMin = 0.25
	flattenMax = 0.75
)

// paddlePosX is the fixed lateral coordinate of each side's paddle.
var paddlePosX = [2]float64{domain.SideLeft: -19.0, domain.SideRight: 19.0}

var ballSpeeds = map[domain.GameMode]float64{
	domain.GameModeNormal: 0.25,
	domain.GameModeFast:   0.5,
}

// BallSpeed returns the fixed ball speed for a ruleset variant.
func BallSpeed(mode domain.GameMode) float64 {
	return ballSpeeds[mode]
}
