// Package ws streams game events and notifications to browsers over websockets.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"shopkeep/config"
	"shopkeep/internal/infra/events"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultSendBuffer   = 32
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
	maxInboundMessage   = 512
)

// Subscriber is the source of the live stream.
type Subscriber interface {
	Subscribe() (<-chan events.Message, func())
}

// client is one connected browser tab.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub keeps the set of connected clients and copies every broker message to each of them.
// Registration and fan-out happen on the Run goroutine only.
type Hub struct {
	source     Subscriber
	register   chan *client
	unregister chan *client
	clients    map[*client]struct{}
	connected  atomic.Int64

	sendBuffer   int
	writeTimeout time.Duration
	pingInterval time.Duration
	upgrader     websocket.Upgrader
	logger       *slog.Logger

	done chan struct{}
}

// NewHub creates a Hub. Zero settings fall back to defaults.
func NewHub(source Subscriber, cfg *config.WebsocketConfig, logger *slog.Logger) *Hub {
	h := &Hub{
		source:       source,
		register:     make(chan *client),
		unregister:   make(chan *client),
		clients:      make(map[*client]struct{}),
		sendBuffer:   defaultSendBuffer,
		writeTimeout: defaultWriteTimeout,
		pingInterval: defaultPingInterval,
		logger:       logger,
		done:         make(chan struct{}),
	}
	if cfg != nil {
		if cfg.SendBuffer > 0 {
			h.sendBuffer = cfg.SendBuffer
		}
		if cfg.WriteTimeout > 0 {
			h.writeTimeout = cfg.WriteTimeout
		}
		if cfg.PingInterval > 0 {
			h.pingInterval = cfg.PingInterval
		}
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(_ *http.Request) bool { return true },
	}

	return h
}

// HubParams holds dependencies for the Hub, injected by Fx.
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Broker *events.Broker
	Config *config.Config
	Logger *slog.Logger
}

// NewFxHub creates the Hub and runs it for the lifetime of the application.
func NewFxHub(params HubParams) *Hub {
	hub := NewHub(params.Broker, params.Config.Websocket, params.Logger)

	var cancel context.CancelFunc
	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			go hub.Run(ctx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-hub.done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return hub
}

// Run fans broker messages out until ctx ends or the broker closes, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	messages, unsubscribe := h.source.Subscribe()
	defer unsubscribe()

	defer func() {
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.connected.Add(1)
			h.logger.Debug("Websocket client connected", slog.Int64("clients", h.connected.Load()))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case msg, ok := <-messages:
			if !ok {
				return
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				h.logger.Error("Failed to encode stream message", slog.Any("error", err))

				continue
			}
			for c := range h.clients {
				select {
				case c.send <- payload:
				default:
					h.logger.Warn("Dropping slow websocket client")
					h.drop(c)
				}
			}
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.connected.Load())
}

// drop forgets a client and closes its send channel, which ends its write pump.
func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.connected.Add(-1)
}

// ServeWS upgrades the request and streams messages to it until either side hangs up.
func (h *Hub) ServeWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	cl := &client{conn: conn, send: make(chan []byte, h.sendBuffer)}
	select {
	case h.register <- cl:
	case <-h.done:
		_ = conn.Close()

		return nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.writePump(cl)
	}()
	h.readPump(cl)
	wg.Wait()

	return nil
}

// readPump discards inbound messages and watches for the peer going away.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}()

	c.conn.SetReadLimit(maxInboundMessage)
	deadline := h.pingInterval + h.writeTimeout
	_ = c.conn.SetReadDeadline(time.Now().Add(deadline))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(deadline))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("Websocket read failed", slog.Any("error", err))
			}

			return
		}
	}
}

// writePump writes queued messages and keeps the connection alive with pings.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
