package log

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw report bytes.
type RawLogger interface {
	Log(tick uint64, data []byte)
}

type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a new RawLogger. If w is nil, the logger discards everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log emits one line with timestamp, tick number and a spaced hex dump.
func (r *rawLogger) Log(tick uint64, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}
	line := fmt.Sprintf("%s tick=%d len=%d hex: % x\n",
		r.now().Format("2006/01/02 15:04:05.000"),
		tick,
		len(data),
		data)

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}

// HexString is the spaced lowercase hex form used by the raw log.
func HexString(data []byte) string {
	out := make([]byte, 0, len(data)*3)
	for i, b := range data {
		if i > 0 {
			out = append(out, ' ')
		}
		out = hex.AppendEncode(out, []byte{b})
	}
	return string(out)
}
