package game

import (
	"testing"

	"pong-service/domain"

	"github.com/stretchr/testify/assert"
)

// legalState builds a full-state report that passes every check for mode.
func legalState(mode domain.GameMode) domain.FullStatePayload {
	return domain.FullStatePayload{
		BallSpeed:  BallSpeed(mode),
		BallPosX:   0, BallPosY: 1, BallPosZ: 0,
		BallScaleX: BallScaleX, BallScaleY: BallScaleY, BallScaleZ: BallScaleZ,

		LeftPosX: paddlePosX[domain.SideLeft], LeftPosY: PaddlePosY, LeftPosZ: 0,
		LeftRotateX: PaddleRotateX, LeftRotateY: PaddleRotateY, LeftRotateZ: PaddleRotateZ,
		LeftScaleX: PaddleScaleX, LeftScaleY: PaddleScaleY, LeftScaleZ: PaddleScaleZ,
		LeftSpeed: PaddleSpeed,

		RightPosX: paddlePosX[domain.SideRight], RightPosY: PaddlePosY, RightPosZ: 0,
		RightRotateX: PaddleRotateX, RightRotateY: PaddleRotateY, RightRotateZ: PaddleRotateZ,
		RightScaleX: PaddleScaleX, RightScaleY: PaddleScaleY, RightScaleZ: PaddleScaleZ,
		RightSpeed: PaddleSpeed,
	}
}

func TestBallInBounds(t *testing.T) {
	assert.True(t, ballInBounds(0, 1, 0))
	assert.True(t, ballInBounds(19.9, 9.9, 12.4))

	assert.False(t, ballInBounds(BallPosXMin, 1, 0), "boundary itself is out")
	assert.False(t, ballInBounds(BallPosXMax, 1, 0))
	assert.False(t, ballInBounds(0, BallPosYMin, 0))
	assert.False(t, ballInBounds(0, BallPosYMax, 0))
	assert.False(t, ballInBounds(0, 1, BallPosZMin))
	assert.False(t, ballInBounds(0, 1, BallPosZMax))
	assert.False(t, ballInBounds(-25, 1, 0))
}

func TestGoalCrossed(t *testing.T) {
	tests := []struct {
		name    string
		posX    float64
		side    domain.PlayerSide
		crossed bool
	}{
		{"center", 0, domain.SideNone, false},
		{"near left line but short", -18.0, domain.SideNone, false},
		{"exactly on left threshold", BallPosXMin + Padding + BallRadius, domain.SideRight, true},
		{"past left line", -19.5, domain.SideRight, true},
		{"exactly on right threshold", BallPosXMax - Padding - BallRadius, domain.SideLeft, true},
		{"past right line", 19.5, domain.SideLeft, true},
		{"near right line but short", 18.0, domain.SideNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, crossed := goalCrossed(tt.posX)
			assert.Equal(t, tt.crossed, crossed)
			assert.Equal(t, tt.side, side)
		})
	}
}

func TestValidHit(t *testing.T) {
	ball := ballState{dirX: -1, dirZ: 0.5, posX: 0, posZ: 0}

	tests := []struct {
		name   string
		report domain.BallHitPayload
		ok     bool
	}{
		{
			"on trajectory",
			domain.BallHitPayload{BallPosX: -10, BallPosY: 1, BallPosZ: 5},
			true,
		},
		{
			"within tolerance",
			domain.BallHitPayload{BallPosX: -10, BallPosY: 1, BallPosZ: 4},
			true,
		},
		{
			"off trajectory",
			domain.BallHitPayload{BallPosX: 10, BallPosY: 1, BallPosZ: 5},
			false,
		},
		{
			"out of bounds",
			domain.BallHitPayload{BallPosX: -30, BallPosY: 1, BallPosZ: 5},
			false,
		},
		{
			"zero z displacement",
			domain.BallHitPayload{BallPosX: -10, BallPosY: 1, BallPosZ: 0},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, validHit(ball, tt.report))
		})
	}
}

func TestValidHitZeroDirZ(t *testing.T) {
	// A degenerate recorded direction never validates: the ratio is not finite.
	ball := ballState{dirX: -1, dirZ: 0}
	assert.False(t, validHit(ball, domain.BallHitPayload{BallPosX: -10, BallPosY: 1, BallPosZ: 1}))
}

func TestValidState(t *testing.T) {
	assert.True(t, validState(domain.GameModeNormal, legalState(domain.GameModeNormal)))
	assert.True(t, validState(domain.GameModeFast, legalState(domain.GameModeFast)))

	mutations := []struct {
		name   string
		mutate func(*domain.FullStatePayload)
	}{
		{"wrong ball speed", func(s *domain.FullStatePayload) { s.BallSpeed = 9 }},
		{"ball out of bounds", func(s *domain.FullStatePayload) { s.BallPosX = 25 }},
		{"ball scaled up", func(s *domain.FullStatePayload) { s.BallScaleX = 2 }},
		{"left paddle off its lane", func(s *domain.FullStatePayload) { s.LeftPosX = 0 }},
		{"left paddle floating", func(s *domain.FullStatePayload) { s.LeftPosY = 5 }},
		{"left paddle out of range", func(s *domain.FullStatePayload) { s.LeftPosZ = 9 }},
		{"left paddle rotated", func(s *domain.FullStatePayload) { s.LeftRotateY = 1 }},
		{"right paddle stretched", func(s *domain.FullStatePayload) { s.RightScaleZ = 8 }},
		{"right paddle too fast", func(s *domain.FullStatePayload) { s.RightSpeed = 1 }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			s := legalState(domain.GameModeNormal)
			tt.mutate(&s)
			assert.False(t, validState(domain.GameModeNormal, s))
		})
	}
}

func TestBallSpeedPerMode(t *testing.T) {
	assert.Equal(t, 0.25, BallSpeed(domain.GameModeNormal))
	assert.Equal(t, 0.5, BallSpeed(domain.GameModeFast))
	assert.Equal(t, 0.0, BallSpeed(domain.GameModeNone))
}

func TestServeBallDistribution(t *testing.T) {
	r := &Room{}
	for i := 0; i < 1000; i++ {
		dirX, dirZ := r.serveBall()
		assert.GreaterOrEqual(t, dirX, -1.0)
		assert.LessOrEqual(t, dirX, 1.0)
		assert.Less(t, absf(dirZ), flattenMax, "serve must stay flattened")
		assert.Equal(t, dirX, r.ball.dirX)
		assert.Equal(t, 0.0, r.ball.posX, "serve resets ball to center")
		assert.Equal(t, 0.0, r.ball.posZ)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
