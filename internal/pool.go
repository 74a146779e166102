package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds byte buffers reused by the packet codec.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 128))
	},
}
