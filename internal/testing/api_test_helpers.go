// Package testing holds helpers shared by the API server tests.
package testing

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/arcadeio/bindcore/bridge"
	"github.com/arcadeio/bindcore/gameapi"
	"github.com/arcadeio/bindcore/internal/server/api"
	"github.com/arcadeio/bindcore/rawinput"
)

// StartAPIServer starts an API server on a free port over an empty device
// registry with no OS key reads, and calls register so the test can add the
// handlers it needs. It returns the address, the catalog and a function to
// call when done.
func StartAPIServer(t *testing.T, register func(r *api.Router, cat *bridge.Catalog)) (addr string, cat *bridge.Catalog, done func()) {
	t.Helper()
	reg := rawinput.NewRegistry(slog.Default())
	gapi := gameapi.New(reg, slog.Default())
	gapi.Keys = rawinput.KeyStateFunc(func(uint16) bool { return false })
	cat = bridge.NewCatalog(gapi, nil, slog.Default())

	apiSrv := api.New(cat, "127.0.0.1:0", api.ServerConfig{}, slog.Default())
	if register != nil {
		register(apiSrv.Router(), cat)
	}
	if err := apiSrv.Start(); err != nil {
		t.Fatalf("api start failed: %v", err)
	}

	done = func() {
		apiSrv.Close()
		time.Sleep(10 * time.Millisecond)
	}
	return apiSrv.Addr(), cat, done
}

// ExecCmd dials the API server, sends cmd (newline not required) and returns
// the response line without the trailing newline.
func ExecCmd(t *testing.T, addr string, cmd string) string {
	t.Helper()
	c, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer c.Close()
	r := bufio.NewReader(c)
	_, _ = fmt.Fprintf(c, "%s\n", cmd)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		t.Fatalf("read failed: %v", err)
	}
	return strings.TrimSuffix(line, "\n")
}
