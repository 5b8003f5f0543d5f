// Package ws is the websocket transport. One Hub goroutine owns the room
// registry and every connection's outbound queue; connections only talk to
// it through its inbox.
package ws

import (
	"context"
	"net/http"
	"slices"

	"github.com/KirkDiggler/hotdice/internal/common/uuid"
	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/KirkDiggler/hotdice/internal/services/messaging"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type hubMsg interface{ isHubMsg() }

type register struct {
	client *Client
}

type unregister struct {
	client *Client
}

type inbound struct {
	client *Client
	data   []byte
}

type statsRequest struct {
	reply chan room.Stats
}

func (register) isHubMsg()     {}
func (unregister) isHubMsg()   {}
func (inbound) isHubMsg()      {}
func (statsRequest) isHubMsg() {}

// Hub serialises every connection's events into one loop
type Hub struct {
	messaging  messaging.Service
	uuid       uuid.UUID
	logger     *zap.Logger
	sendBuffer int
	upgrader   websocket.Upgrader

	inbox chan hubMsg
	done  chan struct{}

	// owned by the loop
	clients map[string]*Client
	dropped []*Client
}

// NewHub creates a hub. It does nothing until Run is called.
func NewHub(cfg *Config) (*Hub, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	buffer := cfg.SendBuffer
	if buffer <= 0 {
		buffer = DefaultSendBuffer
	}

	h := &Hub{
		messaging:  cfg.Messaging,
		uuid:       cfg.UUID,
		logger:     logger,
		sendBuffer: buffer,
		inbox:      make(chan hubMsg, 256),
		done:       make(chan struct{}),
		clients:    make(map[string]*Client),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
	}
	return h, nil
}

// Run owns registry until ctx is cancelled. The registry must be built with
// this hub as its notifier and must not be used from anywhere else.
func (h *Hub) Run(ctx context.Context, registry Registry) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case register:
				h.clients[msg.client.id] = msg.client
				h.logger.Debug("client connected", zap.String("session_id", msg.client.id))

			case unregister:
				if h.clients[msg.client.id] == msg.client {
					h.remove(msg.client)
					registry.Disconnect(ctx, &room.DisconnectInput{SessionID: msg.client.id})
					h.logger.Debug("client disconnected", zap.String("session_id", msg.client.id))
				}

			case inbound:
				if h.clients[msg.client.id] == msg.client {
					h.handle(ctx, registry, msg.client, msg.data)
				}

			case statsRequest:
				msg.reply <- registry.Stats()
			}

			h.flushDropped(ctx, registry)
		}
	}
}

// Emit queues an event for a session. It is called by the registry from
// inside the loop. A connection whose queue is full is dropped.
func (h *Hub) Emit(sessionID string, event protocol.Event) {
	c, ok := h.clients[sessionID]
	if !ok {
		return
	}

	data, err := event.Encode()
	if err != nil {
		h.logger.Error("failed to encode event",
			zap.String("event", string(event.Type)),
			zap.Error(err))
		return
	}

	select {
	case c.send <- data:
	default:
		h.logger.Warn("dropping slow client",
			zap.String("session_id", sessionID),
			zap.String("event", string(event.Type)))
		h.remove(c)
		h.dropped = append(h.dropped, c)
	}
}

// Stats asks the loop for the registry's counts
func (h *Hub) Stats(ctx context.Context) (room.Stats, error) {
	reply := make(chan room.Stats, 1)
	if !h.enqueue(ctx, statsRequest{reply: reply}) {
		return room.Stats{}, ErrHubStopped
	}

	select {
	case stats := <-reply:
		return stats, nil
	case <-h.done:
		return room.Stats{}, ErrHubStopped
	case <-ctx.Done():
		return room.Stats{}, ctx.Err()
	}
}

// ServeWS upgrades the request and attaches a new session to the hub
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &Client{
		id:   h.uuid.NewUUID(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
	}
	if !h.enqueue(context.Background(), register{client: c}) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// enqueue hands a message to the loop, giving up once the loop has stopped
func (h *Hub) enqueue(ctx context.Context, msg hubMsg) bool {
	select {
	case h.inbox <- msg:
		return true
	case <-h.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// remove forgets a client and closes its queue, which ends its write pump
func (h *Hub) remove(c *Client) {
	delete(h.clients, c.id)
	c.closeSend()
}

// flushDropped disconnects slow clients once the current message is done.
// Disconnecting can emit more events and drop more clients.
func (h *Hub) flushDropped(ctx context.Context, registry Registry) {
	for len(h.dropped) > 0 {
		c := h.dropped[0]
		h.dropped = h.dropped[1:]
		registry.Disconnect(ctx, &room.DisconnectInput{SessionID: c.id})
	}
}

func (h *Hub) shutdown() {
	for _, c := range h.clients {
		h.remove(c)
	}
	h.dropped = nil
	h.logger.Info("hub stopped")
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(r *http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		return slices.Contains(allowed, r.Header.Get("Origin"))
	}
}
