package bridge

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/arcadeio/bindcore/gameapi"
	"github.com/arcadeio/bindcore/games"
)

// Loader fills a freshly opened table with saved bindings.
type Loader func(t *games.Table) error

// Catalog opens game tables on first use and keeps one Bridge per game.
type Catalog struct {
	api    *gameapi.API
	load   Loader
	logger *slog.Logger

	mu      sync.Mutex
	bridges map[string]*Bridge
}

// NewCatalog creates a catalog over api. load may be nil.
func NewCatalog(api *gameapi.API, load Loader, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{api: api, load: load, logger: logger, bridges: make(map[string]*Bridge)}
}

func (c *Catalog) API() *gameapi.API { return c.api }

// Get returns the bridge of game, opening its table if needed. game may be
// the registered name in any case or its slug. A table whose bindings fail
// to load stays unbound.
func (c *Catalog) Get(game string) (*Bridge, error) {
	def, err := games.Lookup(game)
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(def.Name)

	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.bridges[key]; ok {
		return b, nil
	}
	table := games.NewTable(def)
	if c.load != nil {
		if err := c.load(table); err != nil {
			c.logger.Warn("loading bindings failed, game stays unbound", "game", def.Name, "error", err)
		}
	}
	b := New(c.api, table, c.logger.With("game", def.Name))
	c.bridges[key] = b
	return b, nil
}

// Open lists the bridges opened so far.
func (c *Catalog) Open() []*Bridge {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Bridge, 0, len(c.bridges))
	for _, b := range c.bridges {
		out = append(out, b)
	}
	return out
}
