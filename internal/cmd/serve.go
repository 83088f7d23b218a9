package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arcadeio/bindcore/bridge"
	"github.com/arcadeio/bindcore/gameapi"
	"github.com/arcadeio/bindcore/internal/hub"
	"github.com/arcadeio/bindcore/internal/log"
	"github.com/arcadeio/bindcore/internal/server/api"
	"github.com/arcadeio/bindcore/internal/server/api/handler"
	"github.com/arcadeio/bindcore/rawinput"
)

// Serve runs the control API and the live state feed over the device
// registry.
//
// The registry starts empty. Device backends live outside this binary and
// add devices through rawinput.Registry; until one does, device-bound
// controls resolve to their cached or neutral state and naive buttons read
// the OS key state.
type Serve struct {
	API  api.ServerConfig `embed:"" prefix:"api."`
	Feed hub.Config       `embed:"" prefix:"feed."`

	Game          string        `help:"Game streamed by the live feed; the feed is off without one" env:"BINDCORE_GAME"`
	BindingsDir   string        `help:"Directory of per-game bindings files (default: <config dir>/bindings)" env:"BINDCORE_BINDINGS_DIR"`
	FlushInterval time.Duration `help:"Interval at which pending device output is flushed" default:"8ms" env:"BINDCORE_FLUSH_INTERVAL"`
}

// Run is called by Kong when the serve command is executed.
func (s *Serve) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := resolveBindingsDir(s.BindingsDir)
	if err != nil {
		return err
	}

	reg := rawinput.NewRegistry(logger)
	cat := bridge.NewCatalog(gameapi.New(reg, logger), bindingsLoader(dir, logger), logger)
	send := outputSender(rawLogger)

	apiSrv := api.New(cat, s.API.Addr, s.API, logger)
	handler.Register(apiSrv.Router(), cat, send)
	if err := apiSrv.Start(); err != nil {
		return err
	}
	defer apiSrv.Close()

	errCh := make(chan error, 1)
	if s.Game != "" && s.Feed.Addr != "" {
		feedSrv, err := s.startFeed(ctx, cat, logger, errCh)
		if err != nil {
			return err
		}
		defer feedSrv.Close()
	}

	logger.Info("bindcore serving", "api", apiSrv.Addr(), "bindings", dir)
	ticker := time.NewTicker(s.FlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
			return nil
		case err := <-errCh:
			return err
		case <-ticker.C:
			_ = reg.FlushOutput(send)
		}
	}
}

func (s *Serve) startFeed(ctx context.Context, cat *bridge.Catalog, logger *slog.Logger, errCh chan<- error) (*http.Server, error) {
	b, err := cat.Get(s.Game)
	if err != nil {
		return nil, err
	}
	bc := hub.NewBroadcaster(hub.NewHub(logger, s.Feed.SendBuf), b, logger)
	go bc.Run(ctx, s.Feed.Interval)

	mux := http.NewServeMux()
	mux.Handle("/ws", bc)
	srv := &http.Server{Addr: s.Feed.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("live feed listening", "addr", s.Feed.Addr, "game", b.Game())
	return srv, nil
}
