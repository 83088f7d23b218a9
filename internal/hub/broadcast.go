package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/arcadeio/bindcore/bridge"
)

// fullSyncEvery bounds how many deltas are sent between two full frames.
const fullSyncEvery = 100

// Broadcaster polls the resolved states of one game and publishes them to a
// hub. It serves the websocket endpoint of the feed as an http.Handler.
type Broadcaster struct {
	hub    *Hub
	bridge *bridge.Bridge
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	last   Snapshot
	seq    int64
	deltas int
}

func NewBroadcaster(h *Hub, b *bridge.Bridge, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{hub: h, bridge: b, logger: logger, now: time.Now}
}

// Run polls every interval until ctx is done, then disconnects all clients.
func (b *Broadcaster) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	b.logger.Info("live feed polling", "game", b.bridge.Game(), "interval", interval)
	for {
		select {
		case <-ctx.Done():
			b.hub.Close()
			return
		case <-ticker.C:
			b.Poll()
		}
	}
}

// Poll resolves the game once and broadcasts what changed since the last
// poll. Every fullSyncEvery deltas a full frame is sent instead.
func (b *Broadcaster) Poll() {
	next := Snapshot{
		Buttons: b.bridge.ReadButtons(),
		Analogs: b.bridge.ReadAnalogs(),
		Lights:  b.bridge.ReadLights(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	delta := ComputeDelta(b.last, next)
	b.last = next
	if delta.IsEmpty() {
		return
	}
	b.seq++
	b.deltas++
	kind, data := "delta", &delta
	if b.deltas >= fullSyncEvery {
		kind, data = "full", &next
		b.deltas = 0
	}
	if frame := b.encode(kind, data); frame != nil {
		b.hub.Broadcast(frame)
	}
}

func (b *Broadcaster) encode(kind string, s *Snapshot) []byte {
	data, err := json.Marshal(newMessage(kind, b.bridge.Game(), b.seq, s, b.now()))
	if err != nil {
		b.logger.Error("encode feed frame", "type", kind, "error", err)
		return nil
	}
	return data
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeHTTP upgrades the request, sends the last full snapshot and
// registers the client for deltas.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("ws upgrade failed", "error", err)
		return
	}
	c := newClient(conn, b.hub.sendBuf, r.RemoteAddr, b.logger)

	b.mu.Lock()
	b.seq++
	last := b.last
	if frame := b.encode("full", &last); frame != nil {
		c.send <- frame
	}
	b.hub.Register(c)
	b.mu.Unlock()

	// The request context ends with this handler; the pumps outlive it.
	go c.writePump()
	go c.readPump(b.hub)
}
