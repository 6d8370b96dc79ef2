package domain

// Wire payloads for the game socket. Field names follow the client protocol.

type EnqueuePayload struct {
	GameMode GameMode `json:"gameMode"`
	UserID   int64    `json:"userId"`
}

type InvitePayload struct {
	GameMode GameMode `json:"gameMode"`
	UserID   int64    `json:"userId"`
	FriendID int64    `json:"friendId"`
}

type InviteReplyPayload struct {
	UserID   int64 `json:"userId"`
	FriendID int64 `json:"friendId"`
}

type HandshakePayload struct {
	Side   PlayerSide `json:"side"`
	RoomID int64      `json:"roomId"`
}

type StartGamePayload struct {
	BallDirX   float64    `json:"ballDirX"`
	BallDirY   float64    `json:"ballDirY"`
	BallDirZ   float64    `json:"ballDirZ"`
	IsFirst    bool       `json:"isFirst"`
	LeftScore  int        `json:"leftScore"`
	RightScore int        `json:"rightScore"`
	BallSpeed  float64    `json:"ballSpeed"`
	Side       PlayerSide `json:"side"`
}

type PaddleMovePayload struct {
	PaddlePosX float64 `json:"paddlePosX"`
	PaddlePosY float64 `json:"paddlePosY"`
	PaddlePosZ float64 `json:"paddlePosZ"`
}

type EmojiPayload struct {
	Type int `json:"type"`
}

// BallHitPayload is the ball report from the rallying side. It is relayed
// verbatim to the rival when it passes validation and does not score.
type BallHitPayload struct {
	BallDirX  float64 `json:"ballDirX"`
	BallDirZ  float64 `json:"ballDirZ"`
	BallPosX  float64 `json:"ballPosX"`
	BallPosY  float64 `json:"ballPosY"`
	BallPosZ  float64 `json:"ballPosZ"`
	BallSpeed float64 `json:"ballSpeed"`
}

// FullStatePayload is the per-tick cheat-check report carrying every
// client-rendered transform for the ball and both paddles.
type FullStatePayload struct {
	BallSpeed  float64 `json:"ballSpeed"`
	BallPosX   float64 `json:"ballPosX"`
	BallPosY   float64 `json:"ballPosY"`
	BallPosZ   float64 `json:"ballPosZ"`
	BallScaleX float64 `json:"ballScaleX"`
	BallScaleY float64 `json:"ballScaleY"`
	BallScaleZ float64 `json:"ballScaleZ"`

	LeftPosX    float64 `json:"leftPosX"`
	LeftPosY    float64 `json:"leftPosY"`
	LeftPosZ    float64 `json:"leftPosZ"`
	LeftRotateX float64 `json:"leftRotateX"`
	LeftRotateY float64 `json:"leftRotateY"`
	LeftRotateZ float64 `json:"leftRotateZ"`
	LeftScaleX  float64 `json:"leftScaleX"`
	LeftScaleY  float64 `json:"leftScaleY"`
	LeftScaleZ  float64 `json:"leftScaleZ"`
	LeftSpeed   float64 `json:"leftSpeed"`

	RightPosX    float64 `json:"rightPosX"`
	RightPosY    float64 `json:"rightPosY"`
	RightPosZ    float64 `json:"rightPosZ"`
	RightRotateX float64 `json:"rightRotateX"`
	RightRotateY float64 `json:"rightRotateY"`
	RightRotateZ float64 `json:"rightRotateZ"`
	RightScaleX  float64 `json:"rightScaleX"`
	RightScaleY  float64 `json:"rightScaleY"`
	RightScaleZ  float64 `json:"rightScaleZ"`
	RightSpeed   float64 `json:"rightSpeed"`
}

type GameOverPayload struct {
	Winner     PlayerSide `json:"winner"`
	LeftScore  int        `json:"leftScore"`
	RightScore int        `json:"rightScore"`
	Reason     EndReason  `json:"reason"`
}
