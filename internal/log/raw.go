package log

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw device traffic. A RawLogger over a nil writer is a
// no-op, so callers never need to check.
type RawLogger interface {
	Log(device string, out bool, data []byte)
}

type rawLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewRaw returns a RawLogger writing hex dumps to w.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

func (l *rawLogger) Log(device string, out bool, data []byte) {
	if l.w == nil {
		return
	}
	dir := "<-"
	if out {
		dir = "->"
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s %s %d bytes\n", time.Now().Format("15:04:05.000000"), dir, device, len(data))
	_, _ = io.WriteString(l.w, hex.Dump(data))
}
