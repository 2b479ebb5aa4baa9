package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw input bytes, used to inspect files that fail to decode.
type RawLogger interface {
	Log(source string, data []byte)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w     io.Writer
	limit int
	mu    sync.Mutex
}

// DefaultRawLimit caps how many leading bytes are dumped per call.
const DefaultRawLimit = 64

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, limit: DefaultRawLimit}
}

// Log emits a single-line dump with timestamp, total size and the hex of the
// leading bytes.
func (r *rawLogger) Log(source string, data []byte) {
	if len(data) == 0 {
		return
	}
	if r.w == nil {
		return
	}

	head := data
	if r.limit > 0 && len(head) > r.limit {
		head = head[:r.limit]
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range head {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s: %d bytes, head: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		source,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
