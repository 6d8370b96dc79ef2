package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"pong-service/domain"
	"pong-service/internal/game"

	fasthttpws "github.com/fasthttp/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Message is the wire envelope for both directions of the game socket.
type Message struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Hub owns every live game socket and bridges them to the engine: inbound
// frames become engine calls, and the engine's notifications come back
// through Notify. Registration and unregistration flow through channels
// consumed by the Run loop, so lifecycle events are serialized.
type Hub struct {
	mutex   sync.RWMutex
	clients map[uuid.UUID]*domain.Client

	register   chan *domain.Client
	unregister chan *domain.Client

	engine *game.Engine
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*domain.Client),
		register:   make(chan *domain.Client),
		unregister: make(chan *domain.Client),
	}
}

// BindEngine wires the engine in after construction. The hub and the engine
// reference each other (hub dispatches inbound events, engine notifies
// through the hub), so one of them has to be bound late.
func (h *Hub) BindEngine(e *game.Engine) {
	h.engine = e
}

func (h *Hub) Run(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.register:
				h.registerClient(client)
				go h.readPump(client)
				go h.writePump(client)
			case client := <-h.unregister:
				h.unregisterClient(client)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) RegisterClient(client *domain.Client) {
	h.register <- client
}

func (h *Hub) registerClient(client *domain.Client) {
	h.mutex.Lock()
	if existing, ok := h.clients[client.ID]; ok {
		close(existing.Done)
		existing.Conn.Close()
	}
	h.clients[client.ID] = client
	h.mutex.Unlock()

	if err := h.engine.Register(client.ID); err != nil {
		zap.L().Error("failed to register game session",
			zap.String("conn_id", client.ID.String()),
			zap.Error(err))
		client.Conn.Close()
		return
	}

	zap.L().Info("client connected",
		zap.String("conn_id", client.ID.String()),
		zap.Int64("user_id", client.UserID))
}

// unregisterClient removes the client and fires the engine disconnect
// exactly once. readPump and writePump both send here on exit; the map
// delete guard makes the second arrival a no-op. Send is never closed,
// only abandoned: Notify may still hold a reference, and a send on a
// closed channel would panic the engine.
func (h *Hub) unregisterClient(client *domain.Client) {
	h.mutex.Lock()
	current, ok := h.clients[client.ID]
	if !ok || current != client {
		h.mutex.Unlock()
		return
	}
	delete(h.clients, client.ID)
	h.mutex.Unlock()

	close(client.Done)
	h.engine.Disconnect(client.ID)

	zap.L().Info("client disconnected",
		zap.String("conn_id", client.ID.String()),
		zap.Int64("user_id", client.UserID))
}

func (h *Hub) readPump(client *domain.Client) {
	defer func() {
		h.unregister <- client
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if !fasthttpws.IsCloseError(err, fasthttpws.CloseNormalClosure, fasthttpws.CloseGoingAway) {
				zap.L().Debug("client read error",
					zap.String("conn_id", client.ID.String()),
					zap.Error(err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.sendError(client, "malformed message")
			continue
		}
		if err := h.dispatch(client, msg); err != nil {
			h.sendError(client, err.Error())
		}
	}
}

// dispatch routes one inbound envelope to the engine. Unknown types are
// dropped silently so protocol additions do not kill older servers.
func (h *Hub) dispatch(client *domain.Client, msg Message) error {
	switch msg.Type {
	case "pushQueue":
		var p domain.EnqueuePayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.Enqueue(client.ID, p.GameMode, p.UserID)

	case "popQueue":
		return h.engine.Dequeue(client.ID)

	case "inviteGame":
		var p domain.InvitePayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.Invite(client.ID, p.GameMode, p.UserID, p.FriendID)

	case "agreeInvite":
		var p domain.InviteReplyPayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.AcceptInvite(client.ID, p.UserID, p.FriendID)

	case "denyInvite":
		var p domain.InviteReplyPayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.DeclineInvite(client.ID, p.UserID, p.FriendID)

	case "getReady":
		return h.engine.MarkReady(client.ID)

	case "movePaddle":
		var p domain.PaddleMovePayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.MovePaddle(client.ID, p)

	case "sendEmoji":
		var p domain.EmojiPayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.SendEmoji(client.ID, p.Type)

	case "ballHit":
		var p domain.BallHitPayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.BallHit(client.ID, p)

	case "validCheck":
		var p domain.FullStatePayload
		if err := json.Unmarshal(msg.Content, &p); err != nil {
			return err
		}
		return h.engine.ValidateState(client.ID, p)
	}
	return nil
}

func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
		h.unregister <- client
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(fasthttpws.CloseMessage, []byte{})
				return
			}
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(fasthttpws.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(fasthttpws.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}

		case <-client.Done:
			return
		}
	}
}

// Notify implements game.Notifier. It must never block: the engine calls it
// while holding a room lock, so a slow socket gets its frame dropped rather
// than stalling the match.
func (h *Hub) Notify(connID uuid.UUID, event string, payload any) {
	content, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("failed to marshal notification",
			zap.String("event", event),
			zap.Error(err))
		return
	}
	frame, err := json.Marshal(Message{Type: event, Content: content})
	if err != nil {
		zap.L().Error("failed to marshal envelope", zap.Error(err))
		return
	}

	h.mutex.RLock()
	client, ok := h.clients[connID]
	h.mutex.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- frame:
	case <-client.Done:
	default:
		zap.L().Warn("send channel full, dropping frame",
			zap.String("conn_id", connID.String()),
			zap.String("event", event))
	}
}

func (h *Hub) sendError(client *domain.Client, message string) {
	frame, err := json.Marshal(domain.WebSocketErrorMessage{
		Type:    "error",
		Message: message,
	})
	if err != nil {
		return
	}
	select {
	case client.Send <- frame:
	case <-client.Done:
	default:
	}
}

// ClientCount reports the number of live sockets.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
