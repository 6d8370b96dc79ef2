package game

import "pong-service/domain"

// Pure validation of client-reported physics. The server never simulates the
// ball; it only checks reports against the court geometry and the last
// authoritative serve.

func ballInBounds(x, y, z float64) bool {
	return x > BallPosXMin && x < BallPosXMax &&
		y > BallPosYMin && y < BallPosYMax &&
		z > BallPosZMin && z < BallPosZMax
}

// validHit checks a ball-hit report against bounds and the trajectory the
// ball was last given: the ratio of reported displacement (X over Z) must
// agree with the recorded direction ratio within tolerance. A client that
// teleports the ball off its line fails here even when the target position
// itself is legal. A zero Z displacement or direction turns the ratio
// non-finite, which also fails the band.
func validHit(ball ballState, report domain.BallHitPayload) bool {
	if !ballInBounds(report.BallPosX, report.BallPosY, report.BallPosZ) {
		return false
	}
	diffRatio := (report.BallPosX - ball.posX) / (report.BallPosZ - ball.posZ)
	dirRatio := ball.dirX / ball.dirZ
	drift := diffRatio - dirRatio
	return drift >= -trajectoryTolerance && drift <= trajectoryTolerance
}

func paddleValid(side domain.PlayerSide, posX, posY, posZ, rotX, rotY, rotZ, scaleX, scaleY, scaleZ, speed float64) bool {
	return posX == paddlePosX[side] &&
		posY == PaddlePosY &&
		posZ > PaddlePosZMin && posZ < PaddlePosZMax &&
		rotX == PaddleRotateX && rotY == PaddleRotateY && rotZ == PaddleRotateZ &&
		scaleX == PaddleScaleX && scaleY == PaddleScaleY && scaleZ == PaddleScaleZ &&
		speed == PaddleSpeed
}

// validState checks the per-tick full-state report: every transform must be
// the fixed constant or fall strictly inside its range.
func validState(mode domain.GameMode, s domain.FullStatePayload) bool {
	if s.BallSpeed != BallSpeed(mode) {
		return false
	}
	if !ballInBounds(s.BallPosX, s.BallPosY, s.BallPosZ) {
		return false
	}
	if s.BallScaleX != BallScaleX || s.BallScaleY != BallScaleY || s.BallScaleZ != BallScaleZ {
		return false
	}
	if !paddleValid(domain.SideLeft,
		s.LeftPosX, s.LeftPosY, s.LeftPosZ,
		s.LeftRotateX, s.LeftRotateY, s.LeftRotateZ,
		s.LeftScaleX, s.LeftScaleY, s.LeftScaleZ, s.LeftSpeed) {
		return false
	}
	return paddleValid(domain.SideRight,
		s.RightPosX, s.RightPosY, s.RightPosZ,
		s.RightRotateX, s.RightRotateY, s.RightRotateZ,
		s.RightScaleX, s.RightScaleY, s.RightScaleZ, s.RightSpeed)
}

// goalCrossed reports whether a ball position is at or past a goal line
// (padding tolerance plus ball radius), and which side scores if so.
func goalCrossed(posX float64) (domain.PlayerSide, bool) {
	switch {
	case posX <= BallPosXMin+Padding+BallRadius:
		return domain.SideRight, true
	case posX >= BallPosXMax-Padding-BallRadius:
		return domain.SideLeft, true
	}
	return domain.SideNone, false
}
