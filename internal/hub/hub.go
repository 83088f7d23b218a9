// Package hub streams the resolved control states of a game to websocket
// clients: a full snapshot on connect, then only what changed.
package hub

import (
	"log/slog"
	"sync"
	"time"
)

// Config represents the live feed part of the serve command.
type Config struct {
	Addr     string        `help:"Websocket feed listen address, empty to disable" default:"127.0.0.1:3244" env:"BINDCORE_FEED_ADDR"`
	Interval time.Duration `help:"Poll interval of the resolved states" default:"16ms" env:"BINDCORE_FEED_INTERVAL"`
	SendBuf  int           `help:"Per-client outbound queue size" default:"64" env:"BINDCORE_FEED_SEND_BUF"`
}

// Hub tracks connected clients and fans frames out to them. A client whose
// queue is full is dropped.
type Hub struct {
	logger  *slog.Logger
	sendBuf int

	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub(logger *slog.Logger, sendBuf int) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	if sendBuf <= 0 {
		sendBuf = 64
	}
	return &Hub{logger: logger, sendBuf: sendBuf, clients: make(map[*Client]struct{})}
}

// Register adds a client. Frames broadcast after Register returns reach it.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("ws client connected", "remote", c.remoteAddr, "clients", n)
}

// Unregister removes a client and closes its queue.
func (h *Hub) Unregister(c *Client) {
	h.remove(c, "unregister")
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues msg on every client without blocking.
func (h *Hub) Broadcast(msg []byte) {
	var slow []*Client
	h.mu.Lock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.Unlock()

	for _, c := range slow {
		h.remove(c, "slow client")
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*Client]struct{})
	h.mu.Unlock()
	for c := range clients {
		c.close()
	}
}

func (h *Hub) remove(c *Client, reason string) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	if !ok {
		return
	}
	c.close()
	h.logger.Info("ws client disconnected", "remote", c.remoteAddr, "reason", reason, "clients", n)
}
