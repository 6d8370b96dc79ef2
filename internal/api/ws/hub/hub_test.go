package hub

import (
	"encoding/json"
	"testing"

	"pong-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestClient(h *Hub, buffer int) *domain.Client {
	client := &domain.Client{
		ID:     uuid.New(),
		UserID: 1,
		Send:   make(chan []byte, buffer),
		Done:   make(chan struct{}),
	}
	h.mutex.Lock()
	h.clients[client.ID] = client
	h.mutex.Unlock()
	return client
}

func TestNotifyWrapsPayloadInEnvelope(t *testing.T) {
	h := NewHub()
	client := addTestClient(h, 4)

	h.Notify(client.ID, "handShake", domain.HandshakePayload{Side: domain.SideLeft, RoomID: 7})

	require.Len(t, client.Send, 1)
	frame := <-client.Send

	var msg Message
	require.NoError(t, json.Unmarshal(frame, &msg))
	assert.Equal(t, "handShake", msg.Type)

	var payload domain.HandshakePayload
	require.NoError(t, json.Unmarshal(msg.Content, &payload))
	assert.Equal(t, domain.SideLeft, payload.Side)
	assert.Equal(t, int64(7), payload.RoomID)
}

func TestNotifyUnknownConnIsNoOp(t *testing.T) {
	h := NewHub()
	assert.NotPanics(t, func() {
		h.Notify(uuid.New(), "gameOver", domain.GameOverPayload{})
	})
}

func TestNotifyDropsWhenBufferFull(t *testing.T) {
	h := NewHub()
	client := addTestClient(h, 1)

	h.Notify(client.ID, "movePaddle", domain.PaddleMovePayload{PaddlePosZ: 1})
	assert.NotPanics(t, func() {
		h.Notify(client.ID, "movePaddle", domain.PaddleMovePayload{PaddlePosZ: 2})
	})
	assert.Len(t, client.Send, 1, "second frame dropped, not queued")
}

func TestClientCount(t *testing.T) {
	h := NewHub()
	assert.Equal(t, 0, h.ClientCount())
	addTestClient(h, 1)
	addTestClient(h, 1)
	assert.Equal(t, 2, h.ClientCount())
}
